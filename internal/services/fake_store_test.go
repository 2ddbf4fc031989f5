package services

import (
	"context"
	"fmt"
	"time"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/ports"
)

type memStore struct {
	rooms   []domain.VoltageRoom
	samples map[string][]domain.LoadSample
	objects map[string][]domain.ConnectedObject
}

func (m *memStore) ListRooms(ctx context.Context) ([]domain.VoltageRoom, error) {
	return m.rooms, nil
}

func (m *memStore) GetRoom(ctx context.Context, id string) (domain.VoltageRoom, error) {
	for _, r := range m.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.VoltageRoom{}, fmt.Errorf("get room id=%s: %w", id, ports.ErrNotFound)
}

func (m *memStore) ListSamples(ctx context.Context, roomID string) ([]domain.LoadSample, error) {
	return m.samples[roomID], nil
}

func (m *memStore) ListObjects(ctx context.Context, roomID string) ([]domain.ConnectedObject, error) {
	return m.objects[roomID], nil
}

func newMemStore() *memStore {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	return &memStore{
		rooms: []domain.VoltageRoom{
			{ID: "A", Name: "Amsterdam", Location: domain.Coordinates{Lat: 52.4, Lon: 4.9}},
			{ID: "B", Location: domain.Coordinates{Lat: 52.0, Lon: 5.1}},
		},
		samples: map[string][]domain.LoadSample{
			"A": {
				{RoomID: "A", Timestamp: day.Add(time.Hour), PowerKW: 10},
				{RoomID: "A", Timestamp: day.Add(2 * time.Hour), PowerKW: 30},
				{RoomID: "A", Timestamp: day.Add(25 * time.Hour), PowerKW: 20},
			},
		},
		objects: map[string][]domain.ConnectedObject{
			"A": {
				{RoomID: "A", ObjectID: "o1", Address: "Dam 1", Location: &domain.Coordinates{Lat: 52.37, Lon: 4.89}},
				{RoomID: "A", ObjectID: "o2"},
			},
		},
	}
}
