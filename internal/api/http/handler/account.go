package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
)

// AccountService defines account registration and login operations.
type AccountService interface {
	CreateAccount(ctx context.Context, params model.CreateAccountParams) error
	Login(ctx context.Context, username, password string) (model.Session, error)
}

type createAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Account handles HTTP endpoints for accounts.
type Account struct {
	accountService AccountService
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		logger:         logger,
	}
}

// CreateAccount registers a user.
func (h *Account) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeBody(w, r, &req); err != nil {
		requestLogger(h.logger, r).Info("Account handler: malformed create account request",
			"error", err.Error())
		handleError(w, err)
		return
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		handleError(w, fmt.Errorf("%w: missing required fields", errBadRequest))
		return
	}

	requestLogger(h.logger, r).Debug("Account handler: processing create account request",
		"username", req.Username)

	err := h.accountService.CreateAccount(r.Context(), model.CreateAccountParams{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		logFailure(requestLogger(h.logger, r), "Account handler: create account failed", err,
			"username", req.Username)
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "Account created.")
}

// Login checks credentials and returns the user identity.
func (h *Account) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		requestLogger(h.logger, r).Info("Account handler: malformed login request",
			"error", err.Error())
		handleError(w, err)
		return
	}

	session, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		logFailure(requestLogger(h.logger, r), "Account handler: login failed", err,
			"username", req.Username)
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		UserID:   session.UserID,
		Username: session.Username,
	})
}
