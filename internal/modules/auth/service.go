package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"petshop/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users   UserRepository
	tokens  TokenIssuer
	loggerf func(format string, args ...interface{})
}

func NewService(users UserRepository, tokens TokenIssuer, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{users: users, tokens: tokens, loggerf: loggerf}
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
		Phone:    u.Phone,
		Address:  u.Address,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		Phone:        req.Phone,
		Address:      req.Address,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.loggerf("level=info msg=user registered user_id=%d email=%s", u.ID, u.Email)
	resp := toUserResponse(u)
	return &resp, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	s.loggerf("level=info msg=user logged in user_id=%d", u.ID)
	return &LoginResponse{Token: token, User: toUserResponse(u)}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	s.loggerf("level=info msg=profile updated user_id=%d", u.ID)
	resp := toUserResponse(u)
	return &resp, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}
