package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
	req "github.com/julfkar-mu/khidmat/internal/models/request_models"
	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

type AuthResult struct {
	Token   string
	AdminID int64
	Role    dbm.AdminRole
}

type AccountService interface {
	Signup(ctx context.Context, request req.SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, request req.LoginRequest) (*AuthResult, error)
}

type accountService struct {
	adminRepo repositories.AdminRepository
}

func NewAccountService(adminRepo repositories.AdminRepository) AccountService {
	return &accountService{adminRepo: adminRepo}
}

func (a *accountService) Signup(ctx context.Context, request req.SignupRequest) (*AuthResult, error) {
	role := dbm.AdminRole(request.Role)
	if !role.Valid() {
		return nil, utils.ErrInvalidRole
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	admin := &dbm.Admin{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := a.adminRepo.Insert(ctx, admin); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return nil, utils.ErrUsernameTaken
			}
			return nil, utils.ErrEmailTaken
		}
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(admin.ID, string(admin.Role))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &AuthResult{Token: token, AdminID: admin.ID, Role: admin.Role}, nil
}

func (a *accountService) Login(ctx context.Context, request req.LoginRequest) (*AuthResult, error) {
	admin, err := a.adminRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if admin == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(admin.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(admin.ID, string(admin.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &AuthResult{Token: token, AdminID: admin.ID, Role: admin.Role}, nil
}
