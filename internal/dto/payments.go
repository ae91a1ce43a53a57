package dto

type CheckoutResponseDTO struct {
	SessionID   string `json:"session_id" example:"cs_test_a1b2c3"`
	CheckoutURL string `json:"checkout_url"`
}

type PaymentIntentResponseDTO struct {
	IntentID     string `json:"intent_id" example:"pi_3Nq4"`
	ClientSecret string `json:"client_secret"`
}

type VerifyPaymentRequestDTO struct {
	SessionID string `json:"sessionId" validate:"required"`
	OrderID   string `json:"orderId" validate:"required"`
}

type ReviewPaymentRequestDTO struct {
	Status string `json:"status" example:"verified"`
}

type UploadProofResponseDTO struct {
	Participant ParticipantDTO `json:"participant"`
}
