package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
	"github.com/rightchoice/medicare-api/pkg/jwt"
)

var validRoles = map[string]bool{
	entity.RoleSuperAdmin: true,
	entity.RoleAdmin:      true,
	entity.RoleManager:    true,
	entity.RoleStaff:      true,
	entity.RoleAccountant: true,
}

// TokenConfig carries the signing parameters for issued tokens.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutes
}

// UseCase implements registration and login.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	token       TokenConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, token TokenConfig) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, token: token}
}

// Register creates a user under an existing company. Emails are unique across
// the system and stored lowercased.
func (uc *UseCase) Register(req dto.RegisterRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 || req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := req.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if !validRoles[role] {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    req.CompanyID,
		Email:        email,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
		LocationIDs:  req.LocationIDs,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and returns a signed token with the user.
// Wrong email, wrong password and a disabled account all fail the same way.
func (uc *UseCase) Login(req dto.LoginRequest) (string, *entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}
	if user == nil || !user.IsActive {
		return "", nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.token.Secret, user.ID, user.CompanyID, user.Role, uc.token.Issuer, uc.token.Expiration)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

// GetUser returns a user scoped to the company.
func (uc *UseCase) GetUser(companyID, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
