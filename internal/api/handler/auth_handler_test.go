package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rothkoai/annotation-service/internal/core/domain"
	"github.com/rothkoai/annotation-service/internal/core/ports"
)

type stubCredentialService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) error
	loginFn    func(ctx context.Context, input ports.LoginInput) error
}

func (s *stubCredentialService) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.registerFn(ctx, input)
}

func (s *stubCredentialService) Login(ctx context.Context, input ports.LoginInput) error {
	return s.loginFn(ctx, input)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
	return he
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCredentialService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			if input.Username != "alice" || input.Password != "secret" {
				t.Fatalf("unexpected args: %+v", input)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"username":"alice","password":"secret"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newTestEcho()
	stub := &stubCredentialService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			return domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/auth/register", `{"username":"bob","password":"x"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubCredentialService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/auth/register", "not-json")
	assertHTTPError(t, handler.Register(c), http.StatusBadRequest)
}

func TestAuthHandler_Register_UsernameTooLong(t *testing.T) {
	e := newTestEcho()
	stub := &stubCredentialService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"username":"` + strings.Repeat("a", 81) + `","password":"x"}`
	c, _ := newJSONContext(e, http.MethodPost, "/auth/register", body)
	he := assertHTTPError(t, handler.Register(c), http.StatusBadRequest)
	if !strings.Contains(he.Message.(string), "username") {
		t.Fatalf("expected message to name the field, got %v", he.Message)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCredentialService{
		loginFn: func(ctx context.Context, input ports.LoginInput) error {
			if input.Username != "alice" || input.Password != "secret" {
				t.Fatalf("unexpected args: %+v", input)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["token"]; ok {
		t.Fatalf("login must not issue a token")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubCredentialService{
		loginFn: func(ctx context.Context, input ports.LoginInput) error {
			return domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubCredentialService{
		loginFn: func(ctx context.Context, input ports.LoginInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/auth/login", "{")
	assertHTTPError(t, handler.Login(c), http.StatusBadRequest)
}
