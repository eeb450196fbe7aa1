package response

import (
	"time"

	"thikana_backend/internal/domain/entities"
)

type AnnouncementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromAnnouncement(a entities.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

func FromAnnouncements(announcements []entities.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, FromAnnouncement(a))
	}
	return out
}

type AnnouncementCreatedResponse struct {
	Message        string `json:"message"`
	AnnouncementID string `json:"announcementId"`
}
