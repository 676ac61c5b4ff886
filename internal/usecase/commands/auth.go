package commands

import (
	"context"
	"log/slog"

	"parking-api/internal/domain/user"
	"parking-api/internal/infra"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/pkg/jwt"
	"parking-api/internal/pkg/password"
	"parking-api/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      int64
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (int64, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return 0, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return 0, err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return 0, errs.Wrap(err, "hash password")
	}
	account, err := user.NewUser(email, req.Name, hash, user.RoleUser, a.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Users().Create(ctx, tx.DB(), account)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return user.ErrEmailTaken
			}
			return cerr
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	account, err := a.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err != nil {
		// Same answer and timing as a wrong password so unknown emails cannot be probed
		password.Burn(req.Password)
		return nil, translate(err, user.ErrInvalidCredentials)
	}
	if err := password.ComparePassword(account.PasswordHash(), req.Password); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	if !account.IsActive() {
		return nil, errs.ErrAccountInactive
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID(), a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; only last_login is stale
		slog.Warn("failed to update last login", "user_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID(),
		Role:        account.Role(),
		AccessToken: token,
	}, nil
}
