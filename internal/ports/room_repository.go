package ports

import (
	"context"
	"errors"
	"voltage-room-service/internal/domain"
)

// ErrNotFound is returned when a requested room does not exist.
var ErrNotFound = errors.New("not found")

// Port: a boundary for retrieving VoltageRoom entities from a data source.
type RoomRepository interface {
	// Retrieve all rooms ordered by ID.
	ListRooms(ctx context.Context) ([]domain.VoltageRoom, error)
	// Retrieve a single room; ErrNotFound when it does not exist.
	GetRoom(ctx context.Context, id string) (domain.VoltageRoom, error)
}
