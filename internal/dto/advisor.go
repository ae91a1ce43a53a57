package dto

type ScrapeRequestDTO struct {
	URL string `json:"url" validate:"required,url"`
}
