package domain

import "errors"

var ErrNoRooms = errors.New("no voltage rooms")

// A medium-voltage distribution room shown as a marker on the map.
type VoltageRoom struct {
	ID       string
	Name     string
	Location Coordinates
}

// Return the display name, falling back to the room ID.
func (r VoltageRoom) DisplayName() string {
	if r.Name == "" {
		return r.ID
	}
	return r.Name
}

// Return the room closest to the given point.
// Distance is planar in degrees, matching a click on a map; ties go to the first room.
func NearestRoom(rooms []VoltageRoom, at Coordinates) (VoltageRoom, error) {
	if len(rooms) == 0 {
		return VoltageRoom{}, ErrNoRooms
	}

	best := 0
	bestDist := rooms[0].Location.degreeDistance(at)
	for i := 1; i < len(rooms); i++ {
		d := rooms[i].Location.degreeDistance(at)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return rooms[best], nil
}

// Return the arithmetic mean of the room locations.
func CenterOf(rooms []VoltageRoom) (Coordinates, error) {
	if len(rooms) == 0 {
		return Coordinates{}, ErrNoRooms
	}

	var lat, lon float64
	for _, r := range rooms {
		lat += r.Location.Lat
		lon += r.Location.Lon
	}
	n := float64(len(rooms))

	return Coordinates{Lat: lat / n, Lon: lon / n}, nil
}
