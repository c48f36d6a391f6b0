package dto

import (
	"catering/infras/jwt"
	userModel "catering/internal/domains/user/model"
	userDto "catering/internal/domains/user/model/dto"
	"catering/shared/constant"
	gModel "catering/shared/model"
	"catering/shared/role"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name        string    `json:"name"                  validate:"required,min=2,max=100"`
	Email       string    `json:"email"                 validate:"required,email"`
	Password    string    `json:"password"              validate:"required,min=8"`
	Phone       *string   `json:"phone,omitempty"       validate:"omitempty,max=20"`
	Role        role.Role `json:"role,omitempty"        validate:"omitempty,oneof=user corporate"`
	CompanyName *string   `json:"companyName,omitempty" validate:"required_if=Role corporate,omitempty,max=150"`
	GSTNumber   *string   `json:"gstNumber,omitempty"   validate:"omitempty,alphanum,len=15"`
}

// AccountRole is the role a self-registered account receives.
func (r *RegisterRequest) AccountRole() role.Role {
	if r.Role == role.Corporate {
		return role.Corporate
	}

	return role.User
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	user := userModel.User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Role:     r.AccountRole(),
		Phone:    r.Phone,
		Active:   true,
		Metadata: gModel.NewMetadata(constant.ContextGuest),
	}

	if user.Role == role.Corporate {
		user.CompanyName = r.CompanyName
		user.GSTNumber = r.GSTNumber
	}

	return user
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type LoginResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	ExpiresIn    int64                `json:"expiresIn"`
	User         userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
