package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Country  string `json:"country" validate:"required,len=2"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponseDTO struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

type UserDTO struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Country      string  `json:"country" example:"US"`
	AccountType  string  `json:"account_type" example:"buyer"`
	Rating       float64 `json:"rating" example:"4.8"`
	TotalOrders  int     `json:"total_orders" example:"12"`
	ReferralCode string  `json:"referral_code" example:"7992739871"`
}

type ReferralResponseDTO struct {
	ReferrerID   string `json:"referrer_id"`
	ReferrerName string `json:"referrer_name"`
}
