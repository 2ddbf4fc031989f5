package csvsource

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/geo/rd"
)

const (
	RoomsFile    = "VoltageRooms.csv"
	ProfilesFile = "profiles.csv"
)

// Dir is a directory of operator exports: VoltageRooms.csv, profiles.csv
// and one <roomID>.csv of connected objects per room.
type Dir struct {
	Path string
}

func NewDir(path string) *Dir {
	return &Dir{Path: path}
}

func (d *Dir) Rooms() ([]domain.VoltageRoom, error) {
	f, err := os.Open(filepath.Join(d.Path, RoomsFile))
	if err != nil {
		return nil, fmt.Errorf("open rooms: %w", err)
	}
	defer f.Close()

	return ReadRooms(f)
}

func (d *Dir) Profiles() ([]domain.LoadSample, int, error) {
	f, err := os.Open(filepath.Join(d.Path, ProfilesFile))
	if err != nil {
		return nil, 0, fmt.Errorf("open profiles: %w", err)
	}
	defer f.Close()

	return ReadProfiles(f)
}

// Objects returns no objects and no error when the room has no object file,
// including when the room id cannot name a file in the directory.
func (d *Dir) Objects(roomID string, convert rd.Converter) ([]domain.ConnectedObject, int, error) {
	name, err := objectFileName(roomID)
	if err != nil {
		log.Printf("Skipping objects room_id=%q err=%v", roomID, err)
		return nil, 0, nil
	}

	f, err := os.Open(filepath.Join(d.Path, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("open objects room=%s: %w", roomID, err)
	}
	defer f.Close()

	return ReadObjects(f, roomID, convert)
}

func objectFileName(roomID string) (string, error) {
	id := strings.TrimSpace(roomID)
	if id == "" || id != filepath.Base(id) || id == "." || id == ".." {
		return "", fmt.Errorf("objects: invalid room id %q", roomID)
	}
	return id + ".csv", nil
}
