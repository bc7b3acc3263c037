package types

import "github.com/go-playground/validator/v10"

// RegisterUserRequest is the payload for creating a dashboard account.
type RegisterUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=255"`
	LegalName string `json:"legal_name" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

func (req *RegisterUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

// LoginRequest is the payload for password login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (req *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}
