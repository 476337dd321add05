package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/dto/request"
	"hotel-pms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers a staff user with a session", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		resp, err := svc.Register(context.Background(), &request.RegisterRequest{
			Username: "frontdesk",
			Email:    "frontdesk@example.com",
			Password: "supersecret",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resp.Role != string(entity.RoleStaff) {
			t.Fatalf("expected staff role, got %s", resp.Role)
		}
		if resp.Token == "" {
			t.Fatalf("expected a session token")
		}
		if len(fakes.sessions.sessions) != 1 {
			t.Fatalf("expected 1 session, got %d", len(fakes.sessions.sessions))
		}

		user, _ := fakes.users.FindByEmail(context.Background(), "frontdesk@example.com")
		if user == nil {
			t.Fatalf("expected user persisted")
		}
		if user.PasswordHash == "supersecret" {
			t.Fatalf("password stored in plain text")
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo, _ := newTestRepos()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		req := &request.RegisterRequest{
			Username: "frontdesk",
			Email:    "frontdesk@example.com",
			Password: "supersecret",
		}
		if _, err := svc.Register(context.Background(), req); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		req.Username = "frontdesk2"
		_, err := svc.Register(context.Background(), req)
		if err == nil || !strings.Contains(err.Error(), "email already registered") {
			t.Fatalf("expected duplicate email error, got %v", err)
		}
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		repo, _ := newTestRepos()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		if _, err := svc.Register(context.Background(), &request.RegisterRequest{
			Username: "frontdesk",
			Email:    "a@example.com",
			Password: "supersecret",
		}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err := svc.Register(context.Background(), &request.RegisterRequest{
			Username: "frontdesk",
			Email:    "b@example.com",
			Password: "supersecret",
		})
		if err == nil || !strings.Contains(err.Error(), "username already taken") {
			t.Fatalf("expected username error, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	register := func(svc AuthService) {
		_, err := svc.Register(context.Background(), &request.RegisterRequest{
			Username: "frontdesk",
			Email:    "frontdesk@example.com",
			Password: "supersecret",
		})
		if err != nil {
			panic(err)
		}
	}

	t.Run("logs in with valid credentials", func(t *testing.T) {
		repo, _ := newTestRepos()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())
		register(svc)

		resp, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "frontdesk@example.com",
			Password: "supersecret",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resp.Token == "" {
			t.Fatalf("expected a session token")
		}
		if resp.ExpiresAt == nil || !resp.ExpiresAt.After(time.Now()) {
			t.Fatalf("expected a future expiry")
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo, _ := newTestRepos()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())
		register(svc)

		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "frontdesk@example.com",
			Password: "wrongpassword",
		})
		if err == nil || !strings.Contains(err.Error(), "invalid credentials") {
			t.Fatalf("expected credentials error, got %v", err)
		}
	})

	t.Run("rejects an unknown email without leaking existence", func(t *testing.T) {
		repo, _ := newTestRepos()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})
		if err == nil || !strings.Contains(err.Error(), "invalid credentials") {
			t.Fatalf("expected credentials error, got %v", err)
		}
	})

	t.Run("rejects a deactivated account", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())
		register(svc)

		user, _ := fakes.users.FindByEmail(context.Background(), "frontdesk@example.com")
		user.IsActive = false

		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Email:    "frontdesk@example.com",
			Password: "supersecret",
		})
		if err == nil || !strings.Contains(err.Error(), "deactivated") {
			t.Fatalf("expected deactivated error, got %v", err)
		}
	})
}

func TestAuthService_Logout(t *testing.T) {
	repo, fakes := newTestRepos()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	token := uuid.New().String()
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(fakes.sessions.revoked) != 1 || fakes.sessions.revoked[0] != token {
		t.Fatalf("expected token revoked")
	}

	t.Run("rejects a malformed token", func(t *testing.T) {
		err := svc.Logout(context.Background(), "not-a-uuid")
		if err == nil || !strings.Contains(err.Error(), "invalid token format") {
			t.Fatalf("expected token format error, got %v", err)
		}
	})
}
