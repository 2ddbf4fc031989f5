package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"voltage-room-service/internal/api/dto"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/geo/rd"
	"voltage-room-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newTestRouter() http.Handler {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	area := 120.0
	store := &memStore{
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
				{
					RoomID:   "A",
					ObjectID: "o1",
					Address:  "Dam 1",
					AreaM2:   &area,
					RD:       &domain.RDPoint{X: 121687, Y: 487484},
					Location: &domain.Coordinates{Lat: 52.374, Lon: 4.898},
				},
				{RoomID: "A", ObjectID: "o2"},
			},
		},
	}
	return NewRouter(store, rd.ModeKadaster)
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthAndMethods(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodPost, "/rooms")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestRequestIDPropagates(t *testing.T) {
	h := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
}

func TestConvert(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/convert?x=155000&y=463000")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.ConvertResponse](t, rec)
	assert.Equal(t, "kadaster", res.Mode)
	assert.InDelta(t, 52.15517440, res.WGS84.Lat, 1e-12)
	assert.True(t, res.InNetherlands)

	rec = do(t, h, http.MethodGet, "/convert?x=155000&y=463000&mode=reference")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[dto.ConvertResponse](t, rec)
	assert.InDelta(t, 0.0144875484, res.WGS84.Lat, 1e-10)
	assert.InDelta(t, 0.0014964462, res.WGS84.Lon, 1e-10)
	assert.False(t, res.InNetherlands)

	for _, target := range []string{
		"/convert?y=463000",
		"/convert?x=NaN&y=463000",
		"/convert?x=1&y=abc",
		"/convert?x=1&y=2&mode=bessel",
	} {
		rec = do(t, h, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestRooms(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/rooms")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.ListRoomsResponse](t, rec)
	require.Len(t, list.Rooms, 2)
	assert.Equal(t, "B", list.Rooms[1].Name)

	rec = do(t, h, http.MethodGet, "/rooms/A")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[dto.RoomDetailResponse](t, rec)
	assert.Equal(t, "Amsterdam", detail.Room.Name)
	require.Len(t, detail.Objects, 2)
	require.NotNil(t, detail.Objects[0].Location)
	require.NotNil(t, detail.Objects[0].AreaM2)
	assert.Nil(t, detail.Objects[1].Location)
	assert.Equal(t, 1, detail.Unplaced)

	rec = do(t, h, http.MethodGet, "/rooms/Z")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/rooms/A/profile")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[dto.DayProfileResponse](t, rec)
	assert.Equal(t, "2024-07-01", p.Date)
	assert.True(t, p.IsPeakDay)
	assert.Equal(t, 2, p.Count)
	assert.Equal(t, []string{"2024-07-01", "2024-07-02"}, p.Dates)

	tests := []struct {
		target string
		status int
	}{
		{"/rooms/A/profile?date=2024-07-02", http.StatusOK},
		{"/rooms/A/profile?date=July", http.StatusBadRequest},
		{"/rooms/A/profile?date=2030-01-01", http.StatusNotFound},
		{"/rooms/B/profile", http.StatusNotFound},
		{"/rooms/Z/profile", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := do(t, h, http.MethodGet, tt.target)
		assert.Equal(t, tt.status, rec.Code, tt.target)
	}
}

func TestMapAndSelect(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/map?selected=A")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[dto.MapViewResponse](t, rec)
	assert.Equal(t, 15, view.Zoom)
	require.NotNil(t, view.SelectedID)
	assert.Equal(t, "A", *view.SelectedID)
	assert.Len(t, view.Markers, 3)
	assert.Equal(t, 1, view.UnplacedObjects)

	rec = do(t, h, http.MethodGet, "/map")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[dto.MapViewResponse](t, rec)
	assert.Equal(t, 7, view.Zoom)
	assert.Nil(t, view.SelectedID)

	rec = do(t, h, http.MethodGet, "/map?selected=Z")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/select?lat=52.05&lon=5.0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "B", decode[dto.RoomResponse](t, rec).ID)

	rec = do(t, h, http.MethodGet, "/select?lat=52.05")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCharts(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/rooms/A/chart?date=2024-07-02")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Power Profile")

	rec = do(t, h, http.MethodGet, "/map/chart?selected=A")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Voltage Room Locations")

	rec = do(t, h, http.MethodGet, "/rooms/Z/chart")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
