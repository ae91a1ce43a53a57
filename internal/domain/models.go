package domain

import "time"

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Country      string    `db:"country"`
	AccountType  string    `db:"account_type"`
	Rating       float64   `db:"rating"`
	TotalOrders  int       `db:"total_orders"`
	ReferralCode string    `db:"referral_code"`
	CreatedAt    time.Time `db:"created_at"`
}

type GroupOrder struct {
	ID                 string            `db:"id"`
	Slug               string            `db:"slug"`
	ManagerID          string            `db:"manager_id"`
	Country            string            `db:"country"`
	Title              string            `db:"title"`
	Description        string            `db:"description"`
	Images             []string          `db:"images"`
	Category           string            `db:"category"`
	IndividualPrice    float64           `db:"individual_price"`
	GroupPrice         float64           `db:"group_price"`
	Currency           string            `db:"currency"`
	MinOrders          int               `db:"min_orders"`
	MaxOrders          int               `db:"max_orders"`
	CurrentOrders      int               `db:"current_orders"`
	PaymentMethods     map[string]string `db:"payment_methods"`
	PaymentDeadline    *time.Time        `db:"payment_deadline"`
	Deadline           time.Time         `db:"deadline"`
	Status             string            `db:"status"`
	DeadlineNotifiedAt *time.Time        `db:"deadline_notified_at"`
	CreatedAt          time.Time         `db:"created_at"`
	UpdatedAt          time.Time         `db:"updated_at"`

	Manager      *User              `db:"-"`
	Participants []OrderParticipant `db:"-"`
}

type OrderParticipant struct {
	ID              string     `db:"id"`
	OrderID         string     `db:"order_id"`
	UserID          string     `db:"user_id"`
	PaymentMethod   string     `db:"payment_method"`
	PaymentProofURL string     `db:"payment_proof_url"`
	PaymentStatus   string     `db:"payment_status"`
	PaymentAmount   float64    `db:"payment_amount"`
	JoinedAt        time.Time  `db:"joined_at"`
	PaidAt          *time.Time `db:"paid_at"`
	VerifiedAt      *time.Time `db:"verified_at"`
	VerifiedBy      string     `db:"verified_by"`
}

type ProductRequest struct {
	ID          string    `db:"id"`
	RequesterID string    `db:"requester_id"`
	Country     string    `db:"country"`
	ProductName string    `db:"product_name"`
	ProductURL  string    `db:"product_url"`
	Description string    `db:"description"`
	Images      []string  `db:"images"`
	MeTooCount  int       `db:"me_too_count"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type RequestVote struct {
	RequestID string    `db:"request_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	Read      bool      `db:"read"`
	ActionURL string    `db:"action_url"`
	CreatedAt time.Time `db:"created_at"`
}

type Product struct {
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	ShippingCost  float64  `json:"shipping_cost"`
	Images        []string `json:"images"`
	URL           string   `json:"url"`
	Retailer      string   `json:"retailer"`
	Category      string   `json:"category,omitempty"`
}
