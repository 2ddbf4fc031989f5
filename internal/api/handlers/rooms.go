package handlers

import (
	"net/http"
	"strings"
	"voltage-room-service/internal/api/dto"
	"voltage-room-service/internal/ports"
	"voltage-room-service/internal/services"
)

// RoomHandler exposes read-only voltage room endpoints.
type RoomHandler struct {
	Store ports.Store
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	rooms, err := h.Store.ListRooms(r.Context())
	if err != nil {
		writeServiceError(w, r, "list rooms", err)
		return
	}

	res := dto.ListRoomsResponse{Rooms: make([]dto.RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		res.Rooms = append(res.Rooms, dto.Room(room))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get returns the room with its connected objects.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	d, err := services.GetRoomDetail(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get room", err)
		return
	}

	res := dto.RoomDetailResponse{
		Room:     dto.Room(d.Room),
		Objects:  make([]dto.ObjectResponse, 0, len(d.Objects)),
		Placed:   d.Placed,
		Unplaced: d.Unplaced,
	}
	for _, o := range d.Objects {
		res.Objects = append(res.Objects, dto.Object(o))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Profile returns one day of the room's load profile (default: the peak day).
func (h *RoomHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := r.PathValue("id")
	date := strings.TrimSpace(r.URL.Query().Get("date"))

	p, err := services.GetDayProfile(r.Context(), h.Store, id, date)
	if err != nil {
		writeServiceError(w, r, "get profile", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DayProfile(id, p))
}
