package handlers

import (
	"net/http"
	"strings"
	"voltage-room-service/internal/api/dto"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/ports"
	"voltage-room-service/internal/services"
)

// MapHandler serves the map view and click-to-select.
type MapHandler struct {
	Store ports.Store
}

func (h *MapHandler) View(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	selected := strings.TrimSpace(r.URL.Query().Get("selected"))
	view, err := services.BuildMapView(r.Context(), h.Store, selected)
	if err != nil {
		writeServiceError(w, r, "build map view", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MapView(view))
}

// Select resolves a clicked position to the nearest voltage room.
func (h *MapHandler) Select(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	lat, err := queryFloat(r, "lat")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	lon, err := queryFloat(r, "lon")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	room, err := services.SelectAt(r.Context(), h.Store, domain.Coordinates{Lat: lat, Lon: lon})
	if err != nil {
		writeServiceError(w, r, "select room", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.Room(room))
}
