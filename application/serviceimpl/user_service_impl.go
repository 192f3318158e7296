package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskdesk/domain/dto"
	"taskdesk/domain/models"
	"taskdesk/domain/repositories"
	"taskdesk/domain/services"
	"taskdesk/pkg/apperr"
	"taskdesk/pkg/config"
	"taskdesk/pkg/logger"
	"taskdesk/pkg/utils"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	jwtCfg   config.JWTConfig
}

func NewUserService(userRepo repositories.UserRepository, jwtCfg config.JWTConfig) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Registration rejected, email taken", "email", req.Email)
		return nil, apperr.Conflict("Email already registered.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, apperr.Store(err)
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// The unique index still backs this up if two registrations race past
	// the pre-check; the repository reports that as a conflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	// Unknown email and wrong password share one message so responses
	// cannot be used to enumerate accounts.
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			logger.WarnContext(ctx, "Login failed, email not found", "email", req.Email)
			return "", nil, apperr.Unauthenticated("Invalid credentials.")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed, wrong password", "user_id", user.ID)
		return "", nil, apperr.Unauthenticated("Invalid credentials.")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtCfg.Secret, s.jwtCfg.ExpiresIn)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign token", "user_id", user.ID, "error", err)
		return "", nil, apperr.Store(err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}
