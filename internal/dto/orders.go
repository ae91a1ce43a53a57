package dto

import "time"

type CreateOrderRequestDTO struct {
	Title           string            `json:"title" validate:"required,max=100"`
	Description     string            `json:"description" validate:"max=500"`
	Images          []string          `json:"images" validate:"max=5"`
	Category        string            `json:"category"`
	Country         string            `json:"country" validate:"required,len=2"`
	IndividualPrice float64           `json:"individual_price" example:"34.99"`
	GroupPrice      float64           `json:"group_price" example:"24.99"`
	MinOrders       int               `json:"min_orders" example:"10"`
	MaxOrders       int               `json:"max_orders" example:"50"`
	PaymentMethods  map[string]string `json:"payment_methods"`
	PaymentDeadline *time.Time        `json:"payment_deadline,omitempty"`
	Deadline        time.Time         `json:"deadline"`
}

type OrderResponseDTO struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	ManagerID       string            `json:"manager_id"`
	Country         string            `json:"country" example:"US"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Images          []string          `json:"images"`
	Category        string            `json:"category"`
	IndividualPrice float64           `json:"individual_price" example:"34.99"`
	GroupPrice      float64           `json:"group_price" example:"24.99"`
	Currency        string            `json:"currency" example:"USD"`
	MinOrders       int               `json:"min_orders" example:"10"`
	MaxOrders       int               `json:"max_orders" example:"50"`
	CurrentOrders   int               `json:"current_orders" example:"7"`
	PaymentMethods  map[string]string `json:"payment_methods"`
	PaymentDeadline *time.Time        `json:"payment_deadline,omitempty"`
	Deadline        time.Time         `json:"deadline"`
	Status          string            `json:"status" example:"active"`
	CreatedAt       time.Time         `json:"created_at"`

	Manager      *UserDTO         `json:"manager,omitempty"`
	Participants []ParticipantDTO `json:"participants,omitempty"`
}

type UpdateOrderStatusRequestDTO struct {
	Status string `json:"status" example:"completed"`
}

type JoinOrderRequestDTO struct {
	PaymentMethod string  `json:"payment_method" example:"bank_transfer"`
	PaymentAmount float64 `json:"payment_amount" example:"24.99"`
}

type ParticipantDTO struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"order_id"`
	UserID          string     `json:"user_id"`
	PaymentMethod   string     `json:"payment_method" example:"bank_transfer"`
	PaymentProofURL string     `json:"payment_proof_url,omitempty"`
	PaymentStatus   string     `json:"payment_status" example:"uploaded"`
	PaymentAmount   float64    `json:"payment_amount" example:"24.99"`
	JoinedAt        time.Time  `json:"joined_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	VerifiedBy      string     `json:"verified_by,omitempty"`
}
