package model

import "github.com/vaultpass/passkit/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
	Count          int   `json:"count" validate:"omitempty,min=1,max=50"`
}

// GeneratedPassword is one generated password together with its strength report.
type GeneratedPassword struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength strength.Report `json:"strength"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
}
