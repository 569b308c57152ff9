package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/repository"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 8
	// bcrypt only hashes the first 72 bytes and rejects longer input
	maxPasswordBytes = 72
)

// TokenIssuer signs a token for a user id with the given lifetime.
type TokenIssuer interface {
	Issue(userID uint, ttl time.Duration) (string, time.Time, error)
}

type AuthHandler struct {
	UserRepo repository.UserRepository
	Tokens   TokenIssuer

	// Login and registration tokens have different lifetimes.
	LoginTTL    time.Duration
	RegisterTTL time.Duration
}

func NewAuthHandler(userRepo repository.UserRepository, tokens TokenIssuer, loginTTL, registerTTL time.Duration) *AuthHandler {
	return &AuthHandler{UserRepo: userRepo, Tokens: tokens, LoginTTL: loginTTL, RegisterTTL: registerTTL}
}

// UserDTO is the public view of a user.
type UserDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsOnboarded bool   `json:"isOnboarded"`
}

func toUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsOnboarded: u.IsOnboarded,
	}
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	email := normalizeEmail(payload.Email)
	if email == "" || payload.Password == "" {
		WriteAPIError(w, http.StatusBadRequest, msgLoginMissing)
		return
	}

	user, err := h.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusUnauthorized, msgLoginFailed)
			return
		}
		writeInternalError(w, r, msgLoginError, err)
		return
	}

	if !user.CheckPassword(payload.Password) {
		WriteAPIError(w, http.StatusUnauthorized, msgLoginFailed)
		return
	}

	token, expiresAt, err := h.Tokens.Issue(user.ID, h.LoginTTL)
	if err != nil {
		writeInternalError(w, r, msgLoginError, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Message:   msgLoginOK,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserDTO(user),
	})
}

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a caregiver account and signs the user in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	name := strings.TrimSpace(payload.Name)
	email := normalizeEmail(payload.Email)
	role := strings.TrimSpace(payload.Role)
	if name == "" || email == "" || payload.Password == "" || role == "" {
		WriteAPIError(w, http.StatusBadRequest, msgRegisterMissing)
		return
	}

	if utf8.RuneCountInString(payload.Password) < minPasswordLength {
		WriteAPIError(w, http.StatusBadRequest, msgPasswordTooShort)
		return
	}
	if len(payload.Password) > maxPasswordBytes {
		WriteAPIError(w, http.StatusBadRequest, msgPasswordTooLong)
		return
	}

	exists, err := h.UserRepo.ExistsByEmail(email)
	if err != nil {
		writeInternalError(w, r, msgRegisterError, err)
		return
	}
	if exists {
		WriteAPIError(w, http.StatusBadRequest, msgEmailTaken)
		return
	}

	newUser := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	if err := newUser.SetPassword(payload.Password); err != nil {
		writeInternalError(w, r, msgRegisterError, err)
		return
	}

	if err := h.UserRepo.Create(newUser); err != nil {
		// lost a race with a concurrent registration for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			WriteAPIError(w, http.StatusBadRequest, msgEmailTaken)
			return
		}
		writeInternalError(w, r, msgRegisterError, err)
		return
	}

	token, expiresAt, err := h.Tokens.Issue(newUser.ID, h.RegisterTTL)
	if err != nil {
		writeInternalError(w, r, msgRegisterError, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Message:   msgRegisterOK,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserDTO(newUser),
	})
}
