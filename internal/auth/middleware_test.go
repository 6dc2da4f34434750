package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-ledger/internal/auth"
)

const testSecret = "test-secret"

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.Middleware(testSecret))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": auth.UserID(c)})
	})

	token, err := auth.GenerateToken(7, "user@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("ошибка выпуска токена: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("запрос с токеном: получили %d, хотели 200", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("запрос без токена: получили %d, хотели 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer мусор")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("запрос с мусорным токеном: получили %d, хотели 401", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	allow := auth.NewAllowlist([]string{"admin@example.com"})
	handler := auth.RequireAdmin(allow, testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	adminToken, err := auth.GenerateToken(1, "Admin@Example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("ошибка выпуска токена: %v", err)
	}
	userToken, err := auth.GenerateToken(2, "user@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("ошибка выпуска токена: %v", err)
	}

	cases := []struct {
		name   string
		token  string
		status int
	}{
		{"администратор", adminToken, http.StatusOK},
		{"обычный пользователь", userToken, http.StatusUnauthorized},
		{"без токена", "", http.StatusUnauthorized},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/stats/users", nil)
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		handler.ServeHTTP(w, req)
		if w.Code != c.status {
			t.Errorf("%s: получили %d, хотели %d", c.name, w.Code, c.status)
		}
	}
}
