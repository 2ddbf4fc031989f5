package csvsource

import (
	"fmt"
	"io"
	"math"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/geo/rd"
)

// Read voltage rooms (id, name, latitude|lat, longitude|lon|lng).
func ReadRooms(r io.Reader) ([]domain.VoltageRoom, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("read rooms: %w", err)
	}

	idCol, err := t.require("id", "id")
	if err != nil {
		return nil, fmt.Errorf("read rooms: %w", err)
	}
	latCol, err := t.require("latitude", "latitude", "lat")
	if err != nil {
		return nil, fmt.Errorf("read rooms: %w", err)
	}
	lonCol, err := t.require("longitude", "longitude", "lon", "lng")
	if err != nil {
		return nil, fmt.Errorf("read rooms: %w", err)
	}
	nameCol := t.col("name")

	rooms := make([]domain.VoltageRoom, 0, len(t.rows))
	for i, rec := range t.rows {
		id := field(rec, idCol)
		if id == "" {
			continue
		}

		lat, ok := parseFinite(field(rec, latCol))
		if !ok {
			return nil, fmt.Errorf("read rooms: line %d: invalid latitude %q", t.lines[i], field(rec, latCol))
		}
		lon, ok := parseFinite(field(rec, lonCol))
		if !ok {
			return nil, fmt.Errorf("read rooms: line %d: invalid longitude %q", t.lines[i], field(rec, lonCol))
		}

		rooms = append(rooms, domain.VoltageRoom{
			ID:       id,
			Name:     field(rec, nameCol),
			Location: domain.Coordinates{Lat: lat, Lon: lon},
		})
	}

	return rooms, nil
}

// Read load samples (voltage_room_id|room_id, timestamp|time|date, power_kw|power|load).
// Rows whose power is not numeric are dropped and counted.
func ReadProfiles(r io.Reader) (_ []domain.LoadSample, dropped int, err error) {
	t, err := readTable(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read profiles: %w", err)
	}

	roomCol, err := t.require("room id", "voltage_room_id", "room_id")
	if err != nil {
		return nil, 0, fmt.Errorf("read profiles: %w", err)
	}
	tsCol, err := t.require("timestamp", "timestamp", "time", "date")
	if err != nil {
		return nil, 0, fmt.Errorf("read profiles: %w", err)
	}
	powerCol, err := t.require("power", "power_kw", "power", "load")
	if err != nil {
		return nil, 0, fmt.Errorf("read profiles: %w", err)
	}

	samples := make([]domain.LoadSample, 0, len(t.rows))
	for i, rec := range t.rows {
		roomID := field(rec, roomCol)
		if roomID == "" {
			dropped++
			continue
		}

		ts, err := parseTimestamp(field(rec, tsCol))
		if err != nil {
			return nil, 0, fmt.Errorf("read profiles: line %d: %w", t.lines[i], err)
		}

		power, ok := parseFinite(field(rec, powerCol))
		if !ok {
			dropped++
			continue
		}

		samples = append(samples, domain.LoadSample{RoomID: roomID, Timestamp: ts, PowerKW: power})
	}

	return samples, dropped, nil
}

// Read the objects connected to roomID and place them with convert.
// Objects without a usable RD pair are kept unplaced and counted in unplaced.
func ReadObjects(r io.Reader, roomID string, convert rd.Converter) (_ []domain.ConnectedObject, unplaced int, err error) {
	t, err := readTable(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read objects room=%s: %w", roomID, err)
	}

	var (
		idCol      = t.col("id")
		purposeCol = t.col("gebruiksdoel")
		typeCol    = t.col("type")
		addrCol    = t.col("hoofdadres")
		areaCol    = t.col("oppervlakte")
		xCol       = t.col("x_coordinate")
		yCol       = t.col("y_coordinate")
	)

	objects := make([]domain.ConnectedObject, 0, len(t.rows))
	for _, rec := range t.rows {
		obj := domain.ConnectedObject{
			RoomID:   roomID,
			ObjectID: field(rec, idCol),
			Purpose:  field(rec, purposeCol),
			Type:     field(rec, typeCol),
			Address:  field(rec, addrCol),
		}
		if area, ok := parseFinite(field(rec, areaCol)); ok {
			obj.AreaM2 = &area
		}

		x, okX := parseFinite(field(rec, xCol))
		y, okY := parseFinite(field(rec, yCol))
		if okX && okY {
			obj.RD = &domain.RDPoint{X: x, Y: y}
			obj.Location = place(convert, x, y)
		}
		if obj.Location == nil {
			unplaced++
		}

		objects = append(objects, obj)
	}

	return objects, unplaced, nil
}

func place(convert rd.Converter, x, y float64) *domain.Coordinates {
	lat, lon := convert(x, y)
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return nil
	}
	return &domain.Coordinates{Lat: lat, Lon: lon}
}
