package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/platform/obs"
	"voltage-room-service/internal/ports"
)

// SQL-backed implementation of the room, profile and object ports.
// The same queries serve SQLite and Postgres; only placeholders and
// timestamp encoding differ by Dialect.
type RoomRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

var _ ports.Store = (*RoomRepository)(nil)

func NewSqliteRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{DB: db, Dialect: SQLite}
}

func NewSQLRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{DB: db, Dialect: Postgres}
}

// bind rewrites '?' placeholders to $n for Postgres.
func (s *RoomRepository) bind(q string) string {
	if s.Dialect != Postgres {
		return q
	}

	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Return all rooms ordered by ID.
func (s *RoomRepository) ListRooms(ctx context.Context) (_ []domain.VoltageRoom, err error) {
	defer obs.Time(ctx, "rooms.ListRooms")(&err)

	if s.DB == nil {
		return nil, errors.New("room repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		lat,
		lon
	FROM voltage_rooms
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: query voltage_rooms table: %w", err)
	}
	defer rows.Close()

	rooms := make([]domain.VoltageRoom, 0, 64)
	for rows.Next() {
		var r domain.VoltageRoom
		if err := rows.Scan(&r.ID, &r.Name, &r.Location.Lat, &r.Location.Lon); err != nil {
			return nil, fmt.Errorf("list rooms: scan row: %w", err)
		}
		rooms = append(rooms, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms: row iteration: %w", err)
	}

	return rooms, nil
}

// Return a single room or ports.ErrNotFound.
func (s *RoomRepository) GetRoom(ctx context.Context, id string) (_ domain.VoltageRoom, err error) {
	defer obs.Time(ctx, "rooms.GetRoom")(&err)

	if s.DB == nil {
		return domain.VoltageRoom{}, errors.New("room repository: DB is nil")
	}

	query := s.bind(`
	SELECT
		id,
		name,
		lat,
		lon
	FROM voltage_rooms
	WHERE id = ?;
	`)

	var r domain.VoltageRoom
	err = s.DB.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Name, &r.Location.Lat, &r.Location.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.VoltageRoom{}, fmt.Errorf("get room id=%s: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return domain.VoltageRoom{}, fmt.Errorf("get room id=%s: %w", id, err)
	}

	return r, nil
}

// Return all samples of the room ordered by time, then source order.
func (s *RoomRepository) ListSamples(ctx context.Context, roomID string) (_ []domain.LoadSample, err error) {
	defer obs.Time(ctx, "rooms.ListSamples")(&err)

	if s.DB == nil {
		return nil, errors.New("room repository: DB is nil")
	}

	query := s.bind(`
	SELECT
		ts,
		utc_offset,
		power_kw
	FROM load_samples
	WHERE room_id = ?
	ORDER BY ts, seq;
	`)

	rows, err := s.DB.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list samples room_id=%s: query load_samples table: %w", roomID, err)
	}
	defer rows.Close()

	samples := make([]domain.LoadSample, 0, 96)
	for rows.Next() {
		sample := domain.LoadSample{RoomID: roomID}
		var ts time.Time
		var offset int
		if s.Dialect == Postgres {
			err = rows.Scan(&ts, &offset, &sample.PowerKW)
		} else {
			var unix int64
			err = rows.Scan(&unix, &offset, &sample.PowerKW)
			ts = time.Unix(unix, 0)
		}
		if err != nil {
			return nil, fmt.Errorf("list samples room_id=%s: scan row: %w", roomID, err)
		}
		sample.Timestamp = inOffset(ts, offset)
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list samples room_id=%s: row iteration: %w", roomID, err)
	}

	return samples, nil
}

// Return the room's objects in source order.
func (s *RoomRepository) ListObjects(ctx context.Context, roomID string) (_ []domain.ConnectedObject, err error) {
	defer obs.Time(ctx, "rooms.ListObjects")(&err)

	if s.DB == nil {
		return nil, errors.New("room repository: DB is nil")
	}

	query := s.bind(`
	SELECT
		object_id,
		purpose,
		type,
		address,
		area_m2,
		rd_x,
		rd_y,
		lat,
		lon
	FROM room_objects
	WHERE room_id = ?
	ORDER BY seq;
	`)

	rows, err := s.DB.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list objects room_id=%s: query room_objects table: %w", roomID, err)
	}
	defer rows.Close()

	objects := make([]domain.ConnectedObject, 0, 64)
	for rows.Next() {
		o := domain.ConnectedObject{RoomID: roomID}
		var area, rdX, rdY, lat, lon sql.NullFloat64
		if err := rows.Scan(&o.ObjectID, &o.Purpose, &o.Type, &o.Address, &area, &rdX, &rdY, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list objects room_id=%s: scan row: %w", roomID, err)
		}

		if area.Valid {
			o.AreaM2 = &area.Float64
		}
		if rdX.Valid && rdY.Valid {
			o.RD = &domain.RDPoint{X: rdX.Float64, Y: rdY.Float64}
		}
		if lat.Valid && lon.Valid {
			o.Location = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
		}
		objects = append(objects, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list objects room_id=%s: row iteration: %w", roomID, err)
	}

	return objects, nil
}
