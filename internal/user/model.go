// File: internal/user/model.go
package user

import (
	"hospital_jobs_backend/internal/common"

	"github.com/google/uuid"
)

// User represents the user model in the database. The password field only
// ever holds a bcrypt hash after registration, never plaintext. Email is
// stored case-sensitively, exactly as received.
type User struct {
	common.BaseModel          // Embeds ID, CreatedAt, UpdatedAt
	FirstName     string  `gorm:"type:varchar(100);not null"`
	LastName      string  `gorm:"type:varchar(100);not null"`
	Email         string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string  `gorm:"type:varchar(255);not null"`
	Gender        string  `gorm:"type:varchar(50)"`
	DateOfBirth   string  `gorm:"type:varchar(50)"`
	Title         *string `gorm:"type:varchar(150)"`
	Qualification *string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// --- DTOs for API requests/responses ---

// SignupRequest defines the body of POST /api/signup.
type SignupRequest struct {
	FirstName string `json:"firstname" binding:"required,max=100"`
	LastName  string `json:"lastname" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"` // bcrypt max is 72 bytes
	Gender    string `json:"gender" binding:"required"`
	DOB       string `json:"dob" binding:"required"`
}

// AuthenticateRequest defines the body of POST /api/authenticate.
type AuthenticateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmailCheckRequest defines the body of POST /api/emailalreadyregistered.
type EmailCheckRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetUserRequest defines the body of POST /api/getuser.
type GetUserRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

// ForgotPasswordRequest defines the body of POST /api/forgotpassword.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest defines the body of POST /api/updatepassword.
type UpdatePasswordRequest struct {
	ID       string `json:"id" binding:"required,uuid"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UpdateProfileRequest defines the body of POST /api/updateprofile.
type UpdateProfileRequest struct {
	ID            string `json:"id" binding:"required,uuid"`
	Title         string `json:"title" binding:"required,max=150"`
	Qualification string `json:"qualification" binding:"required,max=255"`
}

// Response defines the user projection sent in API responses. The password
// hash never crosses the HTTP boundary.
type Response struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"firstname"`
	LastName      string    `json:"lastname"`
	Email         string    `json:"email"`
	Gender        string    `json:"gender"`
	DOB           string    `json:"dob"`
	Title         *string   `json:"title,omitempty"`
	Qualification *string   `json:"qualification,omitempty"`
}

// ToResponse converts a User model to its API projection.
func ToResponse(u *User) Response {
	return Response{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Gender:        u.Gender,
		DOB:           u.DateOfBirth,
		Title:         u.Title,
		Qualification: u.Qualification,
	}
}
