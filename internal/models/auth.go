package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a user. The role is part
// of the credential triple: logging in as the wrong role fails even with a
// correct password.
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin professional"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued tokens and the session user.
type LoginResponse struct {
	Success      bool      `json:"success"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	User         UserInfo  `json:"user"`
	IssuedAt     time.Time `json:"issued_at"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	IP           string `json:"-"`
	UserAgent    string `json:"-"`
}

// RefreshTokenResponse returns the refreshed token pair.
type RefreshTokenResponse struct {
	Success      bool      `json:"success"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	IssuedAt     time.Time `json:"issued_at"`
}

// ChangePasswordRequest payload for updating the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UserInfo describes the authenticated user as the client's session context
// sees it: the full profile minus the password hash.
type UserInfo struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Username        string   `json:"username"`
	MobileNumber    string   `json:"mobile_number"`
	Gender          string   `json:"gender"`
	Age             int      `json:"age"`
	Role            UserRole `json:"role"`
	Designation     *string  `json:"designation"`
	Department      *string  `json:"department"`
	Specialization  *string  `json:"specialization"`
	ExperienceYears *int     `json:"experience_years"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID   int64    `json:"user_id"`
	Role     UserRole `json:"role"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	jwt.RegisteredClaims
}
