package api

import (
	"net/http"
	"voltage-room-service/internal/api/handlers"
	"voltage-room-service/internal/geo/rd"
	"voltage-room-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(store ports.Store, mode rd.Mode) http.Handler {
	mux := http.NewServeMux()

	roomHandler := &handlers.RoomHandler{Store: store}
	mapHandler := &handlers.MapHandler{Store: store}
	chartHandler := &handlers.ChartHandler{Store: store}
	convertHandler := &handlers.ConvertHandler{DefaultMode: mode}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/convert", convertHandler.Convert)
	mux.HandleFunc("/rooms", roomHandler.List)
	mux.HandleFunc("/rooms/{id}", roomHandler.Get)
	mux.HandleFunc("/rooms/{id}/profile", roomHandler.Profile)
	mux.HandleFunc("/rooms/{id}/chart", chartHandler.Profile)
	mux.HandleFunc("/map", mapHandler.View)
	mux.HandleFunc("/map/chart", chartHandler.Map)
	mux.HandleFunc("/select", mapHandler.Select)

	return requestIDMiddleware(loggingMiddleware(mux))
}
