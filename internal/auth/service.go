package auth

import (
	"errors"
	"log"

	"property-listings-api/internal/database"
	"property-listings-api/internal/models"
)

var (
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadCredentials is returned on failed login; it deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrBadCredentials = errors.New("invalid email or password")
	// ErrAccountDisabled is returned when a disabled account logs in.
	ErrAccountDisabled = errors.New("account disabled")
)

// UserStore is the account storage the auth service runs against.
type UserStore interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

// Service handles registration, login and token refresh.
type Service struct {
	store  UserStore
	tokens *TokenManager
}

// NewService creates an auth service.
func NewService(store UserStore, tokens *TokenManager) *Service {
	return &Service{store: store, tokens: tokens}
}

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=30"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned from register, login and refresh.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	Type         string `json:"type"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Register creates a new account. New accounts start as PENDING_AGENT until an
// admin approves them; they can log in and create listings right away.
func (s *Service) Register(req RegisterRequest) (*TokenResponse, error) {
	taken, err := s.store.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    hash,
		PhoneNumber: req.PhoneNumber,
		Role:        models.RolePendingAgent,
		Enabled:     true,
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}
	log.Printf("User registered: %s role=%s", user.Email, user.Role)

	return s.issueTokens(user)
}

// Login verifies credentials and issues tokens.
func (s *Service) Login(req LoginRequest) (*TokenResponse, error) {
	user, err := s.store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		log.Printf("Login failed for %s", req.Email)
		return nil, ErrBadCredentials
	}
	if !user.Enabled {
		return nil, ErrAccountDisabled
	}

	log.Printf("User logged in: %s role=%s", user.Email, user.Role)
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *Service) Refresh(refreshToken string) (*TokenResponse, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrBadCredentials
	}

	user, err := s.store.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !user.Enabled {
		return nil, ErrAccountDisabled
	}

	return s.issueTokens(user)
}

func (s *Service) issueTokens(user *models.User) (*TokenResponse, error) {
	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		Token:        token,
		RefreshToken: refresh,
		Type:         "Bearer",
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(user.Role),
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}
