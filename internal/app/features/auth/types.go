// internal/app/features/auth/types.go
package auth

import "github.com/gracegate/churchhub/internal/domain/models"

// userPayload wraps the user record in the success envelope's data block.
type userPayload struct {
	User *models.User `json:"user"`
}

// tokenResponse is the body for operations that issue (or re-issue) a
// bearer credential.
type tokenResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token"`
	Data   userPayload `json:"data"`
}

// userResponse is the body for operations that return the account only.
type userResponse struct {
	Status string      `json:"status"`
	Data   userPayload `json:"data"`
}
