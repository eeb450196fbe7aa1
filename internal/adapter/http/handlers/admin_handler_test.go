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

func TestAdminHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/admin/profile", h.Profile)

		uc.EXPECT().Profile(gomock.Any()).Return(usecase.AdminProfile{}, usecase.ErrAdminNotFound)

		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("profile with stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/admin/profile", h.Profile)

		uc.EXPECT().Profile(gomock.Any()).Return(usecase.AdminProfile{
			Admin: entities.Agreement{UserName: "Admin", UserEmail: "admin@example.com"},
			Stats: usecase.AdminStats{
				TotalRooms:              10,
				AvailableRoomsPercent:   "60.0",
				UnavailableRoomsPercent: "40.0",
				TotalUsers:              2,
				TotalMembers:            1,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Admin struct {
				Email string `json:"email"`
			} `json:"admin"`
			Stats struct {
				TotalRooms            int64  `json:"totalRooms"`
				AvailableRoomsPercent string `json:"availableRoomsPercent"`
			} `json:"stats"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Admin.Email != "admin@example.com" || resp.Stats.TotalRooms != 10 || resp.Stats.AvailableRoomsPercent != "60.0" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/admin/profile", h.Profile)

		uc.EXPECT().Profile(gomock.Any()).Return(usecase.AdminProfile{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
