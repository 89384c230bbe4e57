package auth

import (
	"errors"
	"testing"
	"time"

	"property-listings-api/internal/database"
	"property-listings-api/internal/models"
)

// memoryUsers is an in-memory UserStore for service tests.
type memoryUsers struct {
	nextID uint
	byID   map[uint]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{nextID: 1, byID: make(map[uint]*models.User)}
}

func (s *memoryUsers) CreateUser(user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	cp := *user
	s.byID[user.ID] = &cp
	return nil
}

func (s *memoryUsers) GetUserByID(id uint) (*models.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memoryUsers) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *memoryUsers) EmailExists(email string) (bool, error) {
	_, err := s.GetUserByEmail(email)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func newTestService() (*Service, *memoryUsers) {
	store := newMemoryUsers()
	tokens := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	return NewService(store, tokens), store
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		FirstName: "Anna",
		LastName:  "Nowak",
		Email:     "anna@example.com",
		Password:  "correct-horse",
	}
}

func TestRegister(t *testing.T) {
	svc, store := newTestService()

	resp, err := svc.Register(registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("register should issue both tokens")
	}
	if resp.Role != string(models.RolePendingAgent) {
		t.Errorf("Role = %q, want PENDING_AGENT", resp.Role)
	}
	if resp.Type != "Bearer" {
		t.Errorf("Type = %q, want Bearer", resp.Type)
	}

	stored, err := store.GetUserByEmail("anna@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if stored.Password == "correct-horse" {
		t.Error("password must be stored hashed, not in plain text")
	}
	if !stored.Enabled {
		t.Error("new accounts should start enabled")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(registerRequest()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(registerRequest()); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(LoginRequest{Email: "anna@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("login should issue a token")
	}

	_, err = svc.Login(LoginRequest{Email: "anna@example.com", Password: "wrong"})
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password = %v, want ErrBadCredentials", err)
	}

	// Unknown email yields the same error as a wrong password.
	_, err = svc.Login(LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown email = %v, want ErrBadCredentials", err)
	}
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, store := newTestService()

	if _, err := svc.Register(registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := store.GetUserByEmail("anna@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	u.Enabled = false
	store.byID[u.ID] = u

	_, err = svc.Login(LoginRequest{Email: "anna@example.com", Password: "correct-horse"})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("Login = %v, want ErrAccountDisabled", err)
	}
}

func TestRefresh(t *testing.T) {
	svc, _ := newTestService()

	registered, err := svc.Register(registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := svc.Refresh(registered.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.Token == "" || refreshed.RefreshToken == "" {
		t.Error("refresh should issue a fresh token pair")
	}

	if _, err := svc.Refresh("not-a-token"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("garbage refresh token = %v, want ErrBadCredentials", err)
	}
}
