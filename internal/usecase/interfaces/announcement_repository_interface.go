package interfaces

import (
	"context"

	"thikana_backend/internal/domain/entities"
)

// IAnnouncementRepository abstracts DynamoDB persistence for Announcement.

type IAnnouncementRepository interface {
	Create(ctx context.Context, a entities.Announcement) (entities.Announcement, error)
	// List returns announcements newest first.
	List(ctx context.Context) ([]entities.Announcement, error)
}
