package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/response"
	"github.com/RajaPrasetya/pos-server-api/pkg/token"
	"github.com/RajaPrasetya/pos-server-api/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginUserRequest) (*response.UserResponse, error)
	Logout(ctx context.Context, user *entity.User) (bool, error)
	GetAllUsers(ctx context.Context) ([]*response.UserResponse, error)
	GetUserByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		config:   config,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
	// Username/email uniqueness is check-then-act here; the unique
	// constraints in the schema are the backstop for concurrent registers.
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	existing, err = s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.RoleCashier
	}

	now := time.Now()
	user := &entity.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("id_user", user.IDUser),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return response.UserToResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req *request.LoginUserRequest) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown username", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		s.log.Warn("Login with wrong password", zap.Int64("id_user", user.IDUser))
		return nil, ErrInvalidCredentials
	}

	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	signed, expiresAt, err := token.Issue(s.config.JWT.Secret, expiry, user)
	if err != nil {
		s.log.Error("Failed to issue session token", zap.Error(err), zap.Int64("id_user", user.IDUser))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// Single-token-per-user: the overwrite implicitly revokes whatever token
	// was stored before.
	if err := s.userRepo.SetToken(ctx, user.IDUser, &signed); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("id_user", user.IDUser),
		zap.String("username", user.Username),
		zap.Time("expires_at", expiresAt),
	)

	resp := response.UserToResponse(user)
	resp.Token = signed
	return resp, nil
}

// Logout clears the stored token. Clearing is idempotent at the store, but a
// replayed token still turns into a 401 because the auth middleware requires
// the stored token to equal the presented one.
func (s *userService) Logout(ctx context.Context, user *entity.User) (bool, error) {
	if err := s.userRepo.SetToken(ctx, user.IDUser, nil); err != nil {
		return false, fmt.Errorf("clear token: %w", err)
	}

	s.log.Info("User logged out", zap.Int64("id_user", user.IDUser))
	return true, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*response.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	responses := make([]*response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	return responses, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return response.UserToResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != nil && *req.Username != user.Username {
		other, err := s.userRepo.FindByUsername(ctx, *req.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if other != nil && other.IDUser != user.IDUser {
			return nil, ErrUsernameExists
		}
		user.Username = *req.Username
	}

	if req.Email != nil && *req.Email != user.Email {
		other, err := s.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil && other.IDUser != user.IDUser {
			return nil, ErrEmailExists
		}
		user.Email = *req.Email
	}

	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashed
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated", zap.Int64("id_user", user.IDUser), zap.String("username", user.Username))

	return response.UserToResponse(user), nil
}
