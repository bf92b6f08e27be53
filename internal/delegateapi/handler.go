// Package delegateapi implements the distance-delegate peer: a standalone
// service that accepts two coordinate pairs and answers with the haversine
// distance. It exists as its own process to keep the delegation boundary an
// explicit network contract.
package delegateapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HelioOssola/cep-distance/internal/domain"
	"github.com/HelioOssola/cep-distance/internal/platform/logging"
)

type point struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type calculateRequest struct {
	Origin      *point `json:"origin"`
	Destination *point `json:"destination"`
}

type calculateResponse struct {
	Origin      domain.Coordinates `json:"origin"`
	Destination domain.Coordinates `json:"destination"`
	DistanceKm  float64            `json:"distance_km"`
}

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", health)
	r.Post("/calculate-distance", calculate)
	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid latitude/longitude values")
		return
	}

	for name, p := range map[string]*point{"origin": req.Origin, "destination": req.Destination} {
		if p == nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("%q must be an object with lat and lon", name))
			return
		}
		if p.Lat == nil || p.Lon == nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("%q must contain 'lat' and 'lon'", name))
			return
		}
	}

	origin := domain.Coordinates{Lat: *req.Origin.Lat, Lon: *req.Origin.Lon}
	destination := domain.Coordinates{Lat: *req.Destination.Lat, Lon: *req.Destination.Lon}

	km := domain.HaversineKm(origin, destination)

	writeJSON(w, r, http.StatusOK, calculateResponse{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  domain.RoundKm(km),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encode response failed",
			"method", r.Method, "path", r.URL.Path, "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
