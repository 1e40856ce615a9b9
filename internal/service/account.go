package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
)

// PasswordHasher derives salted password digests.
type PasswordHasher interface {
	NewSalt() ([]byte, error)
	Hash(password string, salt []byte) []byte
	Verify(password string, salt, digest []byte) bool
}

type Account struct {
	userStore model.UserStore
	hasher    PasswordHasher
	logger    *logger.Logger
}

func NewAccount(userStore model.UserStore, hasher PasswordHasher, logger *logger.Logger) *Account {
	return &Account{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// CreateAccount registers a new user. It fails with model.ErrAlreadyExists
// when either the username or the email is taken.
func (a *Account) CreateAccount(ctx context.Context, params model.CreateAccountParams) error {
	a.logger.Debug("Account service: creating account",
		"username", params.Username)

	existing, err := a.userStore.GetByUsernameOrEmail(ctx, params.Username, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Account service: failed to check existing user",
			"username", params.Username,
			"error", err.Error())
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if err == nil {
		a.logger.Info("Account service: username or email already taken",
			"username", params.Username,
			"existing_user_id", existing.ID)
		return model.ErrAlreadyExists
	}

	salt, err := a.hasher.NewSalt()
	if err != nil {
		a.logger.Error("Account service: failed to generate salt",
			"username", params.Username,
			"error", err.Error())
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Username:     params.Username,
		Email:        params.Email,
		Salt:         salt,
		PasswordHash: a.hasher.Hash(params.Password, salt),
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Account service: account created concurrently",
			"username", params.Username)
		return model.ErrAlreadyExists
	}
	if err != nil {
		a.logger.Error("Account service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Account service: account created",
		"username", user.Username,
		"user_id", user.ID)

	return nil
}

// Login verifies the credentials. Unknown usernames and wrong passwords
// both yield model.ErrInvalidCredentials.
func (a *Account) Login(ctx context.Context, username, password string) (model.Session, error) {
	a.logger.Debug("Account service: login attempt",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Account service: login rejected",
			"username", username)
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Account service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.Salt, user.PasswordHash) {
		a.logger.Info("Account service: login rejected",
			"username", username)
		return model.Session{}, model.ErrInvalidCredentials
	}

	a.logger.Info("Account service: login succeeded",
		"username", user.Username,
		"user_id", user.ID)

	return model.Session{UserID: user.ID, Username: user.Username}, nil
}
