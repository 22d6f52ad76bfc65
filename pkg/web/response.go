// Package web defines common components for a web application.
package web

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken           string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at,omitempty"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 string    `json:"error,omitempty"`
}

// Error wraps a given err into the common response type.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a readable message for the first failed binding validation.
func GetErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " is required"
	case "min":
		return field.Field() + " must be at least " + field.Param() + " characters"
	case "max":
		return field.Field() + " must not exceed " + field.Param() + " characters"
	case "alphanum":
		return field.Field() + " must contain only letters and numbers"
	case "email":
		return field.Field() + " must be a valid email address"
	case "accounttype":
		return field.Field() + " must be either checking or savings"
	default:
		return field.Field() + " is invalid"
	}
}
