package service

import (
	"context"
	"testing"
	"time"

	"github.com/kbhatta/quotify-api/pkg/apperror"
	"github.com/kbhatta/quotify-api/pkg/utils"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc, err := NewAuthService("897100", "995500", jwtManager)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return svc
}

func TestLoginIssuesRoleTokens(t *testing.T) {
	svc := newAuthService(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	cases := []struct {
		pin  string
		role string
	}{
		{"897100", RoleOwner},
		{"995500", RoleUser},
	}

	for _, tc := range cases {
		result, err := svc.Login(context.Background(), tc.pin)
		if err != nil {
			t.Fatalf("login %s: %v", tc.role, err)
		}
		if result.Role != tc.role {
			t.Fatalf("expected role %q, got %q", tc.role, result.Role)
		}

		claims, err := jwtManager.ValidateToken(result.Token)
		if err != nil {
			t.Fatalf("validate token: %v", err)
		}
		if claims.Role != tc.role {
			t.Fatalf("token carries role %q, expected %q", claims.Role, tc.role)
		}
	}
}

func TestLoginRejectsWrongPIN(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "000000")
	if err == nil {
		t.Fatal("expected error for wrong PIN")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 401 || appErr.Message != "Incorrect PIN" {
		t.Fatalf("unexpected error: %+v", appErr)
	}
}
