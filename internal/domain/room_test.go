package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNearestRoom(t *testing.T) {
	rooms := []VoltageRoom{
		{ID: "A", Location: Coordinates{Lat: 52.0, Lon: 5.0}},
		{ID: "B", Location: Coordinates{Lat: 52.5, Lon: 4.9}},
		{ID: "C", Location: Coordinates{Lat: 51.4, Lon: 5.5}},
	}

	tests := []struct {
		at   Coordinates
		want string
	}{
		{Coordinates{Lat: 52.49, Lon: 4.91}, "B"},
		{Coordinates{Lat: 51.0, Lon: 6.0}, "C"},
		{Coordinates{Lat: 52.0, Lon: 5.0}, "A"},
	}

	for _, tt := range tests {
		got, err := NearestRoom(rooms, tt.at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != tt.want {
			t.Errorf("NearestRoom(%v) = %q, want %q", tt.at, got.ID, tt.want)
		}
	}

	if _, err := NearestRoom(nil, Coordinates{}); !errors.Is(err, ErrNoRooms) {
		t.Errorf("err = %v, want ErrNoRooms", err)
	}
}

func TestCenterOf(t *testing.T) {
	rooms := []VoltageRoom{
		{ID: "A", Location: Coordinates{Lat: 52.0, Lon: 4.0}},
		{ID: "B", Location: Coordinates{Lat: 53.0, Lon: 6.0}},
	}

	c, err := CenterOf(rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(c.Lat-52.5) > 1e-12 || math.Abs(c.Lon-5.0) > 1e-12 {
		t.Errorf("center = %+v", c)
	}
}

func TestDisplayNameAndLabel(t *testing.T) {
	if got := (VoltageRoom{ID: "MSR-1"}).DisplayName(); got != "MSR-1" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := (ConnectedObject{ObjectID: "0363"}).Label(); got != "0363" {
		t.Errorf("Label = %q", got)
	}
	if got := (ConnectedObject{}).Label(); got != "Object" {
		t.Errorf("Label = %q", got)
	}
}
