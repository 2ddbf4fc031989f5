package services

import (
	"context"
	"fmt"
	"time"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

const (
	OverviewZoom = 7
	SelectedZoom = 15
)

const (
	MarkerRoom   = "room"
	MarkerObject = "object"
)

// One point to draw on the map.
type MapMarker struct {
	Kind     string
	ID       string
	Label    string
	Location domain.Coordinates
	Selected bool
}

// MapView is what the map shows: where to look and what to draw.
type MapView struct {
	Center          domain.Coordinates
	Zoom            int
	Selected        *domain.VoltageRoom
	Markers         []MapMarker
	UnplacedObjects int
}

// RoomDetail is a selected room together with its connected objects.
type RoomDetail struct {
	Room     domain.VoltageRoom
	Objects  []domain.ConnectedObject
	Placed   int
	Unplaced int
}

// Build the map view. Without a selection the map centers on the mean of all
// rooms at overview zoom; with one it centers on that room and adds its placed objects.
func BuildMapView(ctx context.Context, store ports.Store, selectedID string) (*MapView, error) {
	rooms, err := store.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("build map view: %w", err)
	}

	view := &MapView{Zoom: OverviewZoom, Markers: make([]MapMarker, 0, len(rooms))}
	for i := range rooms {
		r := rooms[i]
		selected := selectedID != "" && r.ID == selectedID
		if selected {
			view.Selected = &r
		}
		view.Markers = append(view.Markers, MapMarker{
			Kind:     MarkerRoom,
			ID:       r.ID,
			Label:    r.DisplayName(),
			Location: r.Location,
			Selected: selected,
		})
	}

	if selectedID == "" {
		if len(rooms) > 0 {
			center, err := domain.CenterOf(rooms)
			if err != nil {
				return nil, fmt.Errorf("build map view: %w", err)
			}
			view.Center = center
		}
		return view, nil
	}

	if view.Selected == nil {
		return nil, fmt.Errorf("build map view: room id=%s: %w", selectedID, ports.ErrNotFound)
	}
	view.Center = view.Selected.Location
	view.Zoom = SelectedZoom

	objects, err := store.ListObjects(ctx, selectedID)
	if err != nil {
		return nil, fmt.Errorf("build map view: %w", err)
	}
	for _, o := range objects {
		if !o.Placed() {
			view.UnplacedObjects++
			continue
		}
		view.Markers = append(view.Markers, MapMarker{
			Kind:     MarkerObject,
			ID:       o.ObjectID,
			Label:    o.Label(),
			Location: *o.Location,
		})
	}

	return view, nil
}

// Return the room nearest to a clicked map position.
func SelectAt(ctx context.Context, rooms ports.RoomRepository, at domain.Coordinates) (domain.VoltageRoom, error) {
	all, err := rooms.ListRooms(ctx)
	if err != nil {
		return domain.VoltageRoom{}, fmt.Errorf("select at: %w", err)
	}

	room, err := domain.NearestRoom(all, at)
	if err != nil {
		return domain.VoltageRoom{}, fmt.Errorf("select at: %w", err)
	}
	return room, nil
}

// Load a room and its connected objects concurrently.
func GetRoomDetail(ctx context.Context, store ports.Store, id string) (*RoomDetail, error) {
	var (
		room    domain.VoltageRoom
		objects []domain.ConnectedObject
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		room, err = store.GetRoom(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		objects, err = store.ListObjects(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get room detail: %w", err)
	}

	d := &RoomDetail{Room: room, Objects: objects}
	for _, o := range objects {
		if o.Placed() {
			d.Placed++
		} else {
			d.Unplaced++
		}
	}
	return d, nil
}

// Analyze one day of a room's profile; an empty date selects the peak day.
func GetDayProfile(ctx context.Context, store ports.Store, id string, date string) (domain.DayProfile, error) {
	if _, err := store.GetRoom(ctx, id); err != nil {
		return domain.DayProfile{}, fmt.Errorf("get day profile: %w", err)
	}

	if date != "" {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return domain.DayProfile{}, fmt.Errorf("get day profile: %w: %q", ErrInvalidDate, date)
		}
	}

	samples, err := store.ListSamples(ctx, id)
	if err != nil {
		return domain.DayProfile{}, fmt.Errorf("get day profile: %w", err)
	}

	p, err := domain.AnalyzeDay(samples, date)
	if err != nil {
		return domain.DayProfile{}, fmt.Errorf("get day profile room id=%s: %w", id, err)
	}
	return p, nil
}
