package ports

import (
	"context"
	"voltage-room-service/internal/domain"
)

// Contract for retrieving the objects connected to a room.
type ObjectRepository interface {
	ListObjects(ctx context.Context, roomID string) ([]domain.ConnectedObject, error)
}

// Store is the full read side used by the dashboard services.
type Store interface {
	RoomRepository
	ProfileRepository
	ObjectRepository
}
