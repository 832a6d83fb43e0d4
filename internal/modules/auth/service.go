package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates an account and returns a signed token. Role defaults to
// player; only player and owner are self-assignable, admin accounts are
// seeded.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := domain.RolePlayer
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if role != domain.RolePlayer && role != domain.RoleOwner {
			return nil, ErrValidation
		}
	}

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: toUserPayload(u)}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: toUserPayload(u)}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*UserPayload, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := toUserPayload(u)
	return &p, nil
}
