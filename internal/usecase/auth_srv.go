package usecase

import (
	"context"
	"fmt"
	"time"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/internal/data/repository"
	"velvet-vogue/internal/dto/request"
	"velvet-vogue/internal/dto/response"
	"velvet-vogue/pkg/token"
	"velvet-vogue/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Reject duplicate email (case-sensitive exact match)
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", utils.ErrConflict)
	}

	// 3. Hash password; plaintext is never persisted or logged
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Create user
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.RegisterResponse{UserID: user.ID.String()}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user. Unknown email and wrong password produce the same
	// error, so callers cannot enumerate accounts.
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, utils.ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, utils.ErrInvalidCredentials
	}

	// 4. Issue token
	signed, expiresAt, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", utils.ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
