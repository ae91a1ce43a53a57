package dto

import "time"

type CreateRequestDTO struct {
	ProductName string   `json:"product_name" validate:"required"`
	ProductURL  string   `json:"product_url"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Country     string   `json:"country" validate:"required,len=2"`
}

type RequestResponseDTO struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	Country     string    `json:"country" example:"US"`
	ProductName string    `json:"product_name"`
	ProductURL  string    `json:"product_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images"`
	MeTooCount  int       `json:"me_too_count" example:"3"`
	Status      string    `json:"status" example:"open"`
	CreatedAt   time.Time `json:"created_at"`
}
