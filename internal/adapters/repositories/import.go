package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/geo/rd"
	"voltage-room-service/internal/platform/obs"
)

// Source provides the raw operator data to import.
type Source interface {
	Rooms() ([]domain.VoltageRoom, error)
	Profiles() ([]domain.LoadSample, int, error)
	Objects(roomID string, convert rd.Converter) ([]domain.ConnectedObject, int, error)
}

// Dialect selects placeholder and upsert syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// ImportStats summarizes one import run.
type ImportStats struct {
	Rooms            int
	Samples          int
	DroppedSamples   int
	Objects          int
	UnplacedObjects  int
	OutsideBBox      int
	OrphanedProfiles int
}

type statements struct {
	room, sample, object string
}

// Import replaces the whole snapshot; children are cleared before parents.
var clearTables = []string{
	`DELETE FROM room_objects;`,
	`DELETE FROM load_samples;`,
	`DELETE FROM voltage_rooms;`,
}

func (d Dialect) statements() statements {
	if d == Postgres {
		return statements{
			room: `
			INSERT INTO voltage_rooms (id, name, lat, lon)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name,
				lat = EXCLUDED.lat,
				lon = EXCLUDED.lon;
			`,
			sample: `
			INSERT INTO load_samples (room_id, seq, ts, utc_offset, power_kw)
			VALUES ($1, $2, $3, $4, $5);
			`,
			object: `
			INSERT INTO room_objects (room_id, seq, object_id, purpose, type, address, area_m2, rd_x, rd_y, lat, lon)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (room_id, seq) DO UPDATE
			SET object_id = EXCLUDED.object_id,
				purpose = EXCLUDED.purpose,
				type = EXCLUDED.type,
				address = EXCLUDED.address,
				area_m2 = EXCLUDED.area_m2,
				rd_x = EXCLUDED.rd_x,
				rd_y = EXCLUDED.rd_y,
				lat = EXCLUDED.lat,
				lon = EXCLUDED.lon;
			`,
		}
	}

	return statements{
		room: `
		INSERT OR REPLACE INTO voltage_rooms (id, name, lat, lon)
		VALUES (?, ?, ?, ?);
		`,
		sample: `
		INSERT INTO load_samples (room_id, seq, ts, utc_offset, power_kw)
		VALUES (?, ?, ?, ?, ?);
		`,
		object: `
		INSERT OR REPLACE INTO room_objects (room_id, seq, object_id, purpose, type, address, area_m2, rd_x, rd_y, lat, lon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
		`,
	}
}

// Timestamps are stored as unix seconds in SQLite and TIMESTAMPTZ in Postgres.
// Neither keeps the source offset, so it is stored next to ts in utc_offset.
func (d Dialect) timeArg(ts time.Time) any {
	if d == Postgres {
		return ts.UTC()
	}
	return ts.Unix()
}

func utcOffset(ts time.Time) int {
	_, offset := ts.Zone()
	return offset
}

// inOffset restores a stored instant to the offset it was read with.
func inOffset(ts time.Time, offset int) time.Time {
	if offset == 0 {
		return ts.UTC()
	}
	return ts.In(time.FixedZone("", offset))
}

// Import rooms, profiles and connected objects from src in a single transaction.
// The previous snapshot is removed first, so rows dropped from src disappear.
// Object RD coordinates are converted with convert before they are stored.
func Import(
	ctx context.Context,
	db *sql.DB,
	dialect Dialect,
	src Source,
	convert rd.Converter,
) (stats ImportStats, err error) {
	defer obs.Time(ctx, "repositories.Import")(&err)

	if db == nil {
		return stats, errors.New("import: DB is nil")
	}

	rooms, err := src.Rooms()
	if err != nil {
		return stats, fmt.Errorf("import: %w", err)
	}
	samples, dropped, err := src.Profiles()
	if err != nil {
		return stats, fmt.Errorf("import: %w", err)
	}
	stats.DroppedSamples = dropped

	known := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		known[r.ID] = struct{}{}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("import: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range clearTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return stats, fmt.Errorf("import: clear snapshot: %w", err)
		}
	}

	q := dialect.statements()

	roomStmt, err := tx.PrepareContext(ctx, q.room)
	if err != nil {
		return stats, fmt.Errorf("import: prepare rooms: %w", err)
	}
	defer roomStmt.Close()

	for _, r := range rooms {
		if _, err := roomStmt.ExecContext(ctx, r.ID, r.DisplayName(), r.Location.Lat, r.Location.Lon); err != nil {
			return stats, fmt.Errorf("import: insert room id=%s: %w", r.ID, err)
		}
		stats.Rooms++
	}

	sampleStmt, err := tx.PrepareContext(ctx, q.sample)
	if err != nil {
		return stats, fmt.Errorf("import: prepare samples: %w", err)
	}
	defer sampleStmt.Close()

	for i, s := range samples {
		if _, ok := known[s.RoomID]; !ok {
			stats.OrphanedProfiles++
			continue
		}
		_, err := sampleStmt.ExecContext(ctx,
			s.RoomID, i, dialect.timeArg(s.Timestamp), utcOffset(s.Timestamp), s.PowerKW,
		)
		if err != nil {
			return stats, fmt.Errorf("import: insert sample room_id=%s: %w", s.RoomID, err)
		}
		stats.Samples++
	}

	objectStmt, err := tx.PrepareContext(ctx, q.object)
	if err != nil {
		return stats, fmt.Errorf("import: prepare objects: %w", err)
	}
	defer objectStmt.Close()

	for _, r := range rooms {
		objects, unplaced, err := src.Objects(r.ID, convert)
		if err != nil {
			return stats, fmt.Errorf("import: %w", err)
		}
		stats.UnplacedObjects += unplaced

		for i, o := range objects {
			var rdX, rdY, lat, lon sql.NullFloat64
			if o.RD != nil {
				rdX = sql.NullFloat64{Float64: o.RD.X, Valid: true}
				rdY = sql.NullFloat64{Float64: o.RD.Y, Valid: true}
			}
			if o.Location != nil {
				lat = sql.NullFloat64{Float64: o.Location.Lat, Valid: true}
				lon = sql.NullFloat64{Float64: o.Location.Lon, Valid: true}
				if !rd.InNetherlands(o.Location.Lat, o.Location.Lon) {
					stats.OutsideBBox++
				}
			}
			var area sql.NullFloat64
			if o.AreaM2 != nil {
				area = sql.NullFloat64{Float64: *o.AreaM2, Valid: true}
			}

			_, err := objectStmt.ExecContext(ctx,
				r.ID, i, o.ObjectID, o.Purpose, o.Type, o.Address,
				area, rdX, rdY, lat, lon,
			)
			if err != nil {
				return stats, fmt.Errorf("import: insert object room_id=%s seq=%d: %w", r.ID, i, err)
			}
			stats.Objects++
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("import: commit tx: %w", err)
	}

	return stats, nil
}
