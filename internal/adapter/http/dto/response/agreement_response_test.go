package response

import (
	"testing"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase"
)

func TestFromAgreement(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	a := entities.Agreement{
		ID:          "a-1",
		UserName:    "Rahim Uddin",
		UserEmail:   "rahim@example.com",
		FloorNo:     "3",
		BlockName:   "B",
		ApartmentNo: "B-301",
		Rent:        12000,
		Status:      entities.AgreementStatusPending,
		Role:        entities.UserRoleUser,
		CreatedAt:   created,
	}

	res := FromAgreement(a)
	if res.ID != "a-1" || res.Status != "pending" || res.Role != "user" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if !res.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created at: %v", res.CreatedAt)
	}
}

func TestFromAgreements_Empty(t *testing.T) {
	res := FromAgreements(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", res)
	}
}

func TestFromAcceptResult(t *testing.T) {
	res := FromAcceptResult(usecase.AcceptResult{AgreementModified: 1, DirectoryModified: 1})
	if res.AgreementModified != 1 || res.UserModified != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.Message == "" {
		t.Fatalf("expected message")
	}
}
