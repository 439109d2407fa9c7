package auth

import (
	"context"
	"io"
	"testing"

	pkgauth "github.com/drevmart/drevmart-backend/pkg/auth"
	"github.com/drevmart/drevmart-backend/pkg/config"
	"github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/logger"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "drevmart",
		ExpirationMinutes: 60,
	}
}

func testPasswordConfig() config.PasswordConfig {
	// Small parameters keep the test fast.
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "auth-test", Output: io.Discard})
	return NewService(testJWTConfig(), testPasswordConfig(), logg)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.Register(ctx, RegisterInput{
		Username: "ivan",
		Email:    "Ivan@Example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID != 1 || user.Email != "ivan@example.com" || user.Role != RoleAuthenticated {
		t.Fatalf("user = %+v", user)
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "ivan@example.com", Password: "x12345"})
		coded := errors.As(err)
		if coded == nil || coded.Code() != errors.CodeConflict {
			t.Fatalf("error = %v, want conflict", err)
		}
	})

	t.Run("login returns a verifiable token", func(t *testing.T) {
		session, err := svc.Login(ctx, "ivan@example.com", "secret123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if session.User.ID != user.ID {
			t.Fatalf("session user = %+v", session.User)
		}

		claims, err := pkgauth.ParseAccessToken(testJWTConfig(), session.JWT)
		if err != nil {
			t.Fatalf("ParseAccessToken: %v", err)
		}
		if claims.UserID != user.ID || claims.Email != user.Email {
			t.Fatalf("claims = %+v", claims)
		}

		got, err := svc.CheckAuth(ctx, claims)
		if err != nil {
			t.Fatalf("CheckAuth: %v", err)
		}
		if got.ID != user.ID {
			t.Fatalf("CheckAuth user = %+v", got)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, "ivan@example.com", "nope")
		coded := errors.As(err)
		if coded == nil || coded.Code() != errors.CodeUnauthorized {
			t.Fatalf("error = %v, want unauthorized", err)
		}
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "secret123")
		coded := errors.As(err)
		if coded == nil || coded.Code() != errors.CodeUnauthorized {
			t.Fatalf("error = %v, want unauthorized", err)
		}
	})
}

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, user.ID, "новое имя")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Username != "новое имя" {
		t.Fatalf("username = %q", updated.Username)
	}

	if err := svc.DeleteAccount(ctx, user.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	if _, err := svc.Login(ctx, "a@b.c", "secret123"); err == nil {
		t.Fatal("login should fail after deletion")
	}
}
