package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/wordwise-app/wordwise/internal/auth"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return auth.NewService("test-hmac", "parent", string(hash))
}

func TestLoginAndMiddleware(t *testing.T) {
	svc := newService(t)

	rr := httptest.NewRecorder()
	auth.LoginHandler(svc)(rr, httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"username":"parent","password":"s3cret"}`)))
	if rr.Code != 200 {
		t.Fatalf("login status = %d", rr.Code)
	}
	body := rr.Body.String()
	tok := strings.TrimSpace(strings.Trim(strings.TrimPrefix(body, `{"access_token":"`), "\"}\n"))
	if tok == "" {
		t.Fatalf("no token in %q", body)
	}

	var reached bool
	h := auth.JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest("GET", "/history", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !reached {
		t.Fatal("valid token did not pass middleware")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newService(t)
	rr := httptest.NewRecorder()
	auth.LoginHandler(svc)(rr, httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"username":"parent","password":"wrong"}`)))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestMiddlewareRejectsBadToken(t *testing.T) {
	svc := newService(t)
	h := auth.JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with bad token")
	}))

	for _, header := range []string{"", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest("GET", "/history", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, rr.Code)
		}
	}
}
