package dto

import "time"

type CreateNotificationDTO struct {
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Type      string `json:"type" example:"info"`
	ActionURL string `json:"action_url,omitempty" example:"/orders/42"`
}

type NotificationResponseDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type" example:"success"`
	Read      bool      `json:"read"`
	ActionURL string    `json:"action_url,omitempty" example:"/orders/42"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponseDTO struct {
	Notifications []NotificationResponseDTO `json:"notifications"`
	UnreadCount   int                       `json:"unread_count" example:"2"`
}
