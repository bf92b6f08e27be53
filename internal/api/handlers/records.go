package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/HelioOssola/cep-distance/internal/api/dto"
	"github.com/HelioOssola/cep-distance/internal/export"
	"github.com/HelioOssola/cep-distance/internal/platform/logging"
	"github.com/HelioOssola/cep-distance/internal/platform/metrics"
	"github.com/HelioOssola/cep-distance/internal/services"
)

// RecordHandler exposes the distance pipeline and record CRUD endpoints.
type RecordHandler struct {
	Service *services.DistanceQueryService
	Metrics *metrics.Registry
}

// Create runs the end-to-end pipeline and responds with the enriched record.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDistanceRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.Service.Create(r.Context(), req.Origin, req.Destination, req.Notes)
	if err != nil {
		h.Metrics.PipelineFailures.WithLabelValues(errorKind(err)).Inc()
		fail(w, r, err)
		return
	}

	logging.Info("distance query created",
		"id", result.Record.ID,
		"origin_cep", result.Record.OriginCEP,
		"destination_cep", result.Record.DestinationCEP,
		"distance_km", result.Record.DistanceKm,
	)

	writeJSON(w, r, http.StatusOK, dto.NewCreateDistanceResponse(result))
}

// List returns a reverse-chronological page of records.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "offset must be an integer")
		return
	}

	records, err := h.Service.List(r.Context(), limit, offset)
	if err != nil {
		fail(w, r, err)
		return
	}

	res := dto.ListRecordsResponse{
		Total: len(records),
		Items: make([]dto.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Items = append(res.Items, dto.NewRecordResponse(rec))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	record, err := h.Service.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRecordResponse(record))
}

// UpdateNotes replaces only the notes field of a record.
func (h *RecordHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateNotesRequest
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	record, err := h.Service.UpdateNotes(r.Context(), id, req.Notes)
	if err != nil {
		fail(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRecordResponse(record))
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteRecordResponse{Status: "deleted", ID: id})
}

// Export streams every stored record as an .xlsx workbook.
func (h *RecordHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListAll(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}

	workbook, err := export.RecordsWorkbook(records)
	if err != nil {
		fail(w, r, err)
		return
	}

	filename := fmt.Sprintf("distance-records-%d.xlsx", len(records))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := workbook.Write(w); err != nil {
		logging.Error("write workbook failed", "error", err.Error())
	}
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "record id must be an integer")
		return 0, false
	}
	return id, true
}
