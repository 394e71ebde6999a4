package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
	"github.com/oksasatya/storefront-api/internal/domain/event"
	repo "github.com/oksasatya/storefront-api/internal/domain/repository"
	"github.com/oksasatya/storefront-api/pkg/apperror"
	"github.com/oksasatya/storefront-api/pkg/helpers"
	"github.com/oksasatya/storefront-api/pkg/validation"
)

// Messages the login endpoint has always returned. They differ, which tells
// a caller whether an email is registered.
const (
	MsgEmailNotFound   = "Email not found"
	MsgInvalidPassword = "Invalid password"
	MsgUserNotCreated  = "User could not be created"
)

type AuthService struct {
	Users      repo.UserRepository
	JWT        *helpers.JWTManager
	BcryptCost int
	Events     EventPublisher
	Logger     *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, bcryptCost int, events EventPublisher, logger *logrus.Logger) *AuthService {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return &AuthService{Users: users, JWT: jwt, BcryptCost: bcryptCost, Events: events, Logger: logger}
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
}

// Register hashes the password and persists a new user. Every failure,
// invalid input and a duplicate email included, surfaces as a 500 with one
// shared message; the cause stays on the error and in the log.
func (s *AuthService) Register(ctx context.Context, in Credentials) (*entity.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, s.RegisterFailed(err)
	}
	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, s.RegisterFailed(err)
	}
	u := &entity.User{Email: in.Email, Password: hash}
	if err := validation.Struct(u); err != nil {
		return nil, s.RegisterFailed(err)
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, s.RegisterFailed(err)
	}
	usersRegistered.Add(1)
	s.Logger.WithField("user_id", u.ID).Info("user registered")
	publish(ctx, s.Events, s.Logger, event.UserRegistered(u.ID, u.Email))
	return u, nil
}

// RegisterFailed logs err and wraps it with MsgUserNotCreated. Validation
// failures become Internal so registration answers only 201 or 500; store
// kinds (Conflict, StoreUnavailable) are kept.
func (s *AuthService) RegisterFailed(err error) error {
	kind := apperror.KindOf(err)
	s.Logger.WithError(err).WithFields(logrus.Fields{
		"kind":   kind.String(),
		"fields": apperror.FieldsOf(err),
	}).Warn("register failed")
	if kind == apperror.ValidationFailed {
		kind = apperror.Internal
	}
	return apperror.Wrap(kind, MsgUserNotCreated, err)
}

// Login verifies the credential pair and issues a signed, expiring token.
func (s *AuthService) Login(ctx context.Context, in Credentials) (LoginResult, error) {
	if err := validation.Struct(in); err != nil {
		return LoginResult{}, err
	}
	u, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			loginsFailed.Add(1)
			return LoginResult{}, apperror.New(apperror.NotFound, MsgEmailNotFound)
		}
		return LoginResult{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, in.Password) {
		loginsFailed.Add(1)
		return LoginResult{}, apperror.New(apperror.InvalidCredential, MsgInvalidPassword)
	}
	tok, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return LoginResult{}, apperror.Wrap(apperror.Internal, "token generation failed", err)
	}
	return LoginResult{Token: tok, ExpiresAt: exp, UserID: u.ID}, nil
}

// Me loads the user a verified token refers to.
func (s *AuthService) Me(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			return nil, apperror.New(apperror.Unauthorized, "user no longer exists")
		}
		return nil, err
	}
	return u, nil
}
