package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
	"github.com/sbilibin2017/gw-journal/internal/repositories"
)

// PasswordHashCost is the bcrypt cost used for stored passwords.
const PasswordHashCost = 13

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      JWTGenerator
	hashCost int

	// dummyHash is compared against on logins for unknown emails.
	dummyHashOnce sync.Once
	dummyHash     []byte
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		hashCost: PasswordHashCost,
	}
}

// Register creates a user and returns it with a fresh session token.
func (svc *AuthService) Register(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		logger.Log.Infow("password too long", "email", email)
		return nil, "", ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			logger.Log.Warnw("email registered concurrently", "email", email)
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", user.ID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns it with a fresh session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(svc.getDummyHash(), []byte(password))
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("login with wrong password", "userID", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", user.ID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// getDummyHash returns a hash at the service cost, generated on first use.
func (svc *AuthService) getDummyHash() []byte {
	svc.dummyHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), svc.hashCost)
		if err != nil {
			logger.Log.Errorw("failed to generate dummy hash", "err", err)
			return
		}
		svc.dummyHash = hash
	})
	return svc.dummyHash
}
