package dto

import "github.com/rightchoice/medicare-api/internal/domain/entity"

type RegisterRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	CompanyID   string   `json:"company_id"`
	LocationIDs []string `json:"location_ids"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	CompanyID   string   `json:"company_id"`
	LocationIDs []string `json:"location_ids"`
	IsActive    bool     `json:"is_active"`
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		Role:        u.Role,
		CompanyID:   u.CompanyID,
		LocationIDs: u.LocationIDs,
		IsActive:    u.IsActive,
	}
}
