package dto

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse returns the pending identity and a resend-only token.
type RegisterResponse struct {
	ID                string `json:"id"`
	Message           string `json:"message"`
	VerificationToken string `json:"verification_token"`
	TokenType         string `json:"token_type"`
}

// VerifyEmailRequest payload for the 6-digit code check.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest payload carrying a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse standard response for token-issuing endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// UserProfileResponse is the public view of an identity.
type UserProfileResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	EmailVerified bool    `json:"email_verified"`
	Role          string  `json:"role"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
}
