package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/shopfront/internal/apperr"
	"github.com/hongminglow/shopfront/internal/auth"
	"github.com/hongminglow/shopfront/internal/http/respond"
	"github.com/hongminglow/shopfront/internal/models"
	"github.com/hongminglow/shopfront/internal/models/dto"
	"github.com/hongminglow/shopfront/internal/storage"
)

const minPasswordLength = 6

// dummyHash is compared against when no user matches the login email, so the
// unknown-email and wrong-password paths cost roughly the same.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	store      storage.UserStore
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthHandler constructs the handler. cost is the bcrypt cost factor.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, cost int) *AuthHandler {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthHandler{store: store, tokens: tokens, bcryptCost: cost}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.Validation("invalid JSON payload"))
		return
	}

	email := normalizeEmail(req.Email)
	if fields := validateRegistration(email, req.Password); len(fields) > 0 {
		respond.Err(w, apperr.Invalid(fields...))
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		respond.Err(w, apperr.Internal("failed to hash password", err))
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         models.RoleUser,
		PasswordHash: string(passwordHash),
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Err(w, apperr.Conflict("Email already in use"))
			return
		}
		respond.Err(w, apperr.Internal("failed to create user", err))
		return
	}

	token, err := h.tokens.Generate(created)
	if err != nil {
		respond.Err(w, apperr.Internal("failed to generate token", err))
		return
	}

	respond.JSON(w, http.StatusCreated, dto.AuthResponse{
		Message: "User registered",
		User:    created.Public(),
		Token:   token,
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.Validation("invalid JSON payload"))
		return
	}

	email := normalizeEmail(req.Email)
	if fields := validateLogin(email, req.Password); len(fields) > 0 {
		respond.Err(w, apperr.Invalid(fields...))
		return
	}

	// Unknown email and wrong password must be indistinguishable to the
	// caller. When no user matches, still burn a hash comparison so the two
	// paths cost roughly the same.
	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			respond.Err(w, apperr.Auth("Invalid credentials"))
			return
		}
		respond.Err(w, apperr.Internal("failed to fetch user", err))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Err(w, apperr.Auth("Invalid credentials"))
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respond.Err(w, apperr.Internal("failed to generate token", err))
		return
	}

	respond.JSON(w, http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    user.Public(),
		Token:   token,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email, password string) []apperr.FieldError {
	var fields []apperr.FieldError
	if !validEmail(email) {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Invalid email"})
	}
	if len(password) < minPasswordLength {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return fields
}

func validateLogin(email, password string) []apperr.FieldError {
	var fields []apperr.FieldError
	if !validEmail(email) {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Invalid email"})
	}
	if password == "" {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password required"})
	}
	return fields
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
