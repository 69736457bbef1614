package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	logger    *observability.Logger
}

func New(store AuthStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFailedLogin        = errors.New("failed to login")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
	ErrExpiredToken       = errors.New("token expired")
)

// LoggedInUser is returned by a successful login.
type LoggedInUser struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      store.User `json:"user"`
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	Email          string           `json:"email"`
}

// CreateUser registers an operator account with a bcrypt-hashed password.
func (p *AuthProcessor) CreateUser(ctx context.Context, email, password, name string) (store.User, error) {
	email = strings.TrimSpace(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.User{}, err
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.User{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return store.User{}, err
	}

	p.logger.Info(ctx, "operator created")
	return user, nil
}

// Login checks the credentials and issues a signed token valid for 24 hours.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (LoggedInUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoggedInUser{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return LoggedInUser{}, ErrFailedLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.InfoWithError(ctx, "password mismatch", err)
		return LoggedInUser{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := p.generateJWTToken(ctx, user, expiresAt)
	if err != nil {
		return LoggedInUser{}, err
	}

	return LoggedInUser{
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
		User:      user,
	}, nil
}
