package handlers

import (
	"net/http"
	"strings"
	"voltage-room-service/internal/api/dto"
	"voltage-room-service/internal/geo/rd"
)

// ConvertHandler exposes the RD -> WGS84 conversion.
type ConvertHandler struct {
	DefaultMode rd.Mode
}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	x, err := queryFloat(r, "x")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	y, err := queryFloat(r, "y")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	mode := h.DefaultMode
	if raw := strings.TrimSpace(r.URL.Query().Get("mode")); raw != "" {
		mode, err = rd.ParseMode(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "mode must be reference or kadaster")
			return
		}
	}

	lat, lon := mode.Converter()(x, y)

	writeJSON(w, r, http.StatusOK, dto.ConvertResponse{
		Mode:          string(mode),
		RD:            dto.RDPointResponse{X: x, Y: y},
		WGS84:         dto.CoordinatesResponse{Lat: lat, Lon: lon},
		InNetherlands: rd.InNetherlands(lat, lon),
	})
}
