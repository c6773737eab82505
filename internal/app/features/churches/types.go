// internal/app/features/churches/types.go
package churches

import "github.com/gracegate/churchhub/internal/domain/models"

// churchPayload wraps one church record in the success envelope.
type churchPayload struct {
	Church *models.Church `json:"church"`
}

type churchResponse struct {
	Status string        `json:"status"`
	Data   churchPayload `json:"data"`
}

type churchListResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    struct {
		Churches []models.Church `json:"churches"`
	} `json:"data"`
}

// publicListResponse carries the restricted {id, name} projection only.
type publicListResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	HasNext bool   `json:"hasNext"`
	Data    struct {
		Churches []models.ChurchSummary `json:"churches"`
	} `json:"data"`
}
