package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/model"
	"main/repository"
	"main/services"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter(t *testing.T, requiredRole string) (*gin.Engine, *repository.MemoryUserStore, *services.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repository.NewMemoryUserStore()
	tokens := services.NewTokenService("test_secret_key", time.Hour)

	router := gin.New()
	router.GET("/secure", RequireRole(users, tokens, requiredRole), func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})

	return router, users, tokens
}

func addUser(t *testing.T, users *repository.MemoryUserStore, role string, active bool) *model.User {
	t.Helper()
	user := &model.User{
		UserID:   "user-" + role,
		Email:    role + "@example.com",
		FullName: "Test User",
		Role:     role,
		IsActive: active,
	}
	if err := users.Put(context.Background(), user); err != nil {
		t.Fatal("user setup failed:", err)
	}
	return user
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	t.Run("MissingHeader", func(t *testing.T) {
		router, _, _ := newGuardedRouter(t, model.RoleAuthority)
		if w := requestWithToken(router, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		router, _, _ := newGuardedRouter(t, model.RoleAuthority)
		if w := requestWithToken(router, "not.a.token"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("UnknownSubject", func(t *testing.T) {
		router, _, tokens := newGuardedRouter(t, model.RoleAuthority)
		token, err := tokens.Issue("ghost-user")
		if err != nil {
			t.Fatal(err)
		}
		if w := requestWithToken(router, token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("DeactivatedUser", func(t *testing.T) {
		router, users, tokens := newGuardedRouter(t, model.RoleAuthority)
		user := addUser(t, users, model.RoleAuthority, false)
		token, err := tokens.Issue(user.UserID)
		if err != nil {
			t.Fatal(err)
		}
		if w := requestWithToken(router, token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("WrongRoleIsForbidden", func(t *testing.T) {
		router, users, tokens := newGuardedRouter(t, model.RoleAuthority)
		tourist := addUser(t, users, model.RoleTourist, true)
		token, err := tokens.Issue(tourist.UserID)
		if err != nil {
			t.Fatal(err)
		}
		if w := requestWithToken(router, token); w.Code != http.StatusForbidden {
			t.Fatalf("tourist on authority route must get 403, got %d", w.Code)
		}
	})

	t.Run("MatchingRolePasses", func(t *testing.T) {
		router, users, tokens := newGuardedRouter(t, model.RoleAuthority)
		authority := addUser(t, users, model.RoleAuthority, true)
		token, err := tokens.Issue(authority.UserID)
		if err != nil {
			t.Fatal(err)
		}
		if w := requestWithToken(router, token); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
