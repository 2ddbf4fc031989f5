package ports

import (
	"context"
	"voltage-room-service/internal/domain"
)

// Contract for retrieving a room's power-load profile.
type ProfileRepository interface {
	// Return every sample of the room ordered by time. Timestamps keep the
	// offset they were imported with.
	ListSamples(ctx context.Context, roomID string) ([]domain.LoadSample, error)
}
