package commands

import (
	"context"
	"log/slog"

	"syncro-backend/internal/domain/auth"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"
	"syncro-backend/internal/pkg/jwt"
	"syncro-backend/internal/pkg/password"
	"syncro-backend/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult carries a freshly issued access token and the account it belongs to.
type AuthResult struct {
	AccessToken string
	UserID      int64
	Email       string
	FirstName   string
	Role        user.Role
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, credentials auth.Credentials) (*AuthResult, error)
	ToggleRole(ctx context.Context, identity user.Identity) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(email, hash, name)

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Users().Create(ctx, tx.DB(), u)
		return cerr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(id, u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		AccessToken: token,
		UserID:      id,
		Email:       email.Value(),
		FirstName:   name.First(),
		Role:        u.Role(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*AuthResult, error) {
	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.ActiveRole)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", snap.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded
		slog.Warn("transaction failed during login", "user_id", snap.ID, "error", err.Error())
	}

	return &AuthResult{
		AccessToken: token,
		UserID:      snap.ID,
		Email:       snap.Email,
		FirstName:   snap.FirstName,
		Role:        role,
	}, nil
}

// ToggleRole flips the caller's active role and issues a token carrying the new one.
func (a *authCommandsImpl) ToggleRole(ctx context.Context, identity user.Identity) (*AuthResult, error) {
	var (
		snap *shared.UserSnapshot
		next user.Role
	)
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var rerr error
		snap, rerr = tx.Reads().UserByID(ctx, identity.UserID)
		if rerr != nil {
			return rerr
		}
		if !snap.IsActive {
			return ErrUserInactive
		}
		current, rerr := user.NewRole(snap.ActiveRole)
		if rerr != nil {
			return rerr
		}
		next = current.Toggle()
		return tx.Users().UpdateActiveRole(ctx, tx.DB(), snap.ID, next)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(snap.ID, next)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		AccessToken: token,
		UserID:      snap.ID,
		Email:       snap.Email,
		FirstName:   snap.FirstName,
		Role:        next,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same error as a password mismatch so emails cannot be enumerated
		return nil, ErrInvalidCredentials
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return snap, nil
}
