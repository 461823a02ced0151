package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorEnvelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return rec, env
}

func TestErrorHandler_DomainError(t *testing.T) {
	rec, env := renderError(t, domain.NotFoundf("employee not found with id: %s", "JTC-404"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env.StatusCode != http.StatusNotFound {
		t.Errorf("statusCode must mirror the HTTP status, got %d", env.StatusCode)
	}
	if env.Message != "employee not found with id: JTC-404" {
		t.Errorf("unexpected message: %q", env.Message)
	}
	if env.Data != nil {
		t.Errorf("error envelope must carry no data, got %v", env.Data)
	}
}

func TestErrorHandler_ConflictError(t *testing.T) {
	rec, env := renderError(t, domain.Conflictf("email already exists: %s", "a@b.c"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if env.Message != "email already exists: a@b.c" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestErrorHandler_EchoError(t *testing.T) {
	rec, env := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "name is required"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Message != "name is required" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, env := renderError(t, errors.New("mongo: socket closed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if env.Message != "unexpected error: mongo: socket closed" {
		t.Errorf("underlying message must be embedded, got %q", env.Message)
	}
}
