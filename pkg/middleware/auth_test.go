package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	session *entity.Session
}

func (s *stubSessionRepo) Create(_ context.Context, _ *entity.Session) error { return nil }

func (s *stubSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	if s.session != nil && s.session.Token.String() == token {
		return s.session, nil
	}
	return nil, nil
}

func (s *stubSessionRepo) Revoke(_ context.Context, _ string) error { return nil }

func (s *stubSessionRepo) RevokeAllUserSessions(_ context.Context, _ uuid.UUID) error { return nil }

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func validSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestAuthSession(t *testing.T) {
	userID := uuid.New()
	session := validSession(userID)
	sessions := &stubSessionRepo{session: session}
	middleware := AuthSession(sessions, zap.NewNop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok || gotUserID != userID {
			t.Errorf("expected user ID in context, got %v (ok=%v)", gotUserID, ok)
		}
		token, ok := utils.GetTokenFromContext(r.Context())
		if !ok || token != session.Token.String() {
			t.Errorf("expected token in context, got %q (ok=%v)", token, ok)
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("passes a valid bearer token through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
		req.Header.Set("Authorization", "Bearer "+session.Token.String())
		rec := httptest.NewRecorder()

		middleware(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
		rec := httptest.NewRecorder()

		middleware(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
		req.Header.Set("Authorization", "Token abc123")
		rec := httptest.NewRecorder()

		middleware(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
		req.Header.Set("Authorization", "Bearer "+uuid.New().String())
		rec := httptest.NewRecorder()

		middleware(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	newUser := func(role entity.UserRole) *entity.User {
		return &entity.User{
			Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			Username: "boss",
			Role:     role,
			IsActive: true,
		}
	}

	t.Run("allows an admin user", func(t *testing.T) {
		admin := newUser(entity.RoleAdmin)
		middleware := Admin(&stubUserRepo{user: admin}, zap.NewNop())

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/guests/1", nil)
		ctx := utils.SetUserContext(req.Context(), admin.ID, string(entity.RoleAdmin))
		rec := httptest.NewRecorder()

		middleware(next).ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("forbids a staff user", func(t *testing.T) {
		staff := newUser(entity.RoleStaff)
		middleware := Admin(&stubUserRepo{user: staff}, zap.NewNop())

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/guests/1", nil)
		ctx := utils.SetUserContext(req.Context(), staff.ID, string(entity.RoleStaff))
		rec := httptest.NewRecorder()

		middleware(next).ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("requires authentication first", func(t *testing.T) {
		middleware := Admin(&stubUserRepo{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/guests/1", nil)
		rec := httptest.NewRecorder()

		middleware(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
