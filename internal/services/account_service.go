package services

import (
	"context"
	"errors"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	AdminLogin(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	ListUsers(ctx context.Context) ([]db_models.User, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, utils.ErrDuplicateRecord) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, roleFor(user))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	now := utils.NowUnixSeconds()
	user.LastLogin = &now
	_ = a.userRepo.Save(ctx, user)

	return &response_models.LoginResponse{Token: token, IsVIP: user.IsVIP}, nil
}

// AdminLogin mirrors Login but only admits accounts flagged is_admin.
func (a *AccountService) AdminLogin(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || !user.IsAdmin {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, "admin")
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	now := utils.NowUnixSeconds()
	user.LastLogin = &now
	_ = a.userRepo.Save(ctx, user)

	return &response_models.LoginResponse{Token: token, IsVIP: user.IsVIP}, nil
}

func (a *AccountService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := a.userRepo.ListNonAdmin(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func roleFor(user *db_models.User) string {
	if user.IsAdmin {
		return "admin"
	}
	return "user"
}
