//go:build unit || e2e

package builder

import (
	reqdto "parking-api/internal/handler/dto/request"
	"parking-api/internal/usecase/commands"
)

type AuthBuilder struct {
	Email    string
	Password string
	Name     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Test User",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Name:     a.Name,
	}
}

func (a *AuthBuilder) BuildCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: a.Email, Password: a.Password}
}

func (a *AuthBuilder) BuildRegisterCommand() commands.RegisterRequest {
	return commands.RegisterRequest{Email: a.Email, Password: a.Password, Name: a.Name}
}
