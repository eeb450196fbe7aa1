package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"thikana_backend/internal/adapter/http/handlers/mocks"
	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_GetRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/users/:email/role", h.GetRole)

		uc.EXPECT().GetRole(gomock.Any(), "rahim@example.com").Return(entities.UserRoleMember, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/rahim@example.com/role", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["role"] != "member" {
			t.Fatalf("unexpected role: %s", resp["role"])
		}
	})

	t.Run("unknown email defaults to user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/users/:email/role", h.GetRole)

		uc.EXPECT().GetRole(gomock.Any(), "nobody@example.com").Return(entities.UserRoleUser, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/nobody@example.com/role", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["role"] != "user" {
			t.Fatalf("unexpected role: %s", resp["role"])
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/users/:email/role", h.GetRole)

		uc.EXPECT().GetRole(gomock.Any(), "%20").Return(entities.UserRole(""), usecase.ErrInvalidEmail)

		req := httptest.NewRequest(http.MethodGet, "/users/%2520/role", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/users/:email/role", h.GetRole)

		uc.EXPECT().GetRole(gomock.Any(), "rahim@example.com").Return(entities.UserRole(""), errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/users/rahim@example.com/role", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
