/*
handlers.go - HTTP handlers for the salary tracker service

PURPOSE:
  Exposes the payroll engine over REST. Handlers own HTTP parsing, JSON
  serialization, and persistence orchestration; every salary rule lives in
  the payroll package.

ENDPOINTS:
  GET  /api/health   Liveness probe
  GET  /api/salary   Latest persisted report (404 until the first refresh)
  POST /api/refresh  Fetch records from the source, compute, persist, return
  POST /api/compute  Compute for records in the request body, no persistence

ERROR HANDLING:
  Errors are returned as ErrorResponse JSON:
  - 400: invalid request body, empty record set on /api/compute
  - 404: no stored report, source produced no records
  - 502: the attendance source failed
  - 500: persistence or internal failures

CONCURRENCY:
  The engine is reentrant, but /api/refresh writes the shared report store,
  so refreshes are serialized with a mutex. Reads go through the store's own
  locking.

SEE ALSO:
  - dto.go: request/response shapes
  - server.go: router and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shakedr2/salary-tracker/attendance"
	"github.com/shakedr2/salary-tracker/payroll"
	"github.com/shakedr2/salary-tracker/store"
)

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	Calc   *payroll.Calculator
	Source attendance.Source
	Store  store.ReportStore
	Log    *logrus.Logger

	refreshMu sync.Mutex
}

// NewHandler wires a handler. A nil log falls back to the standard logger.
func NewHandler(calc *payroll.Calculator, source attendance.Source, st store.ReportStore, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{Calc: calc, Source: source, Store: st, Log: log}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetSalary returns the most recently persisted report.
func (h *Handler) GetSalary(w http.ResponseWriter, r *http.Request) {
	report, err := h.Store.LatestReport(r.Context())
	if errors.Is(err, store.ErrNoReport) {
		writeError(w, http.StatusNotFound, "No salary data found. Please refresh first.", "no_report")
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("failed to load salary report")
		writeError(w, http.StatusInternalServerError, "Failed to load salary report", "store_error")
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(report))
}

// Refresh pulls attendance data from the source, computes a fresh report,
// persists it, and returns it. Refreshes run one at a time.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	ctx := r.Context()
	h.Log.Info("starting attendance refresh")

	raws, err := h.Source.Fetch(ctx)
	if err != nil {
		h.Log.WithError(err).Error("attendance source failed")
		writeError(w, http.StatusBadGateway, "Failed to fetch attendance data", "source_error")
		return
	}
	if len(raws) == 0 {
		writeError(w, http.StatusNotFound, "No attendance records found", "no_records")
		return
	}

	report, err := h.Calc.Compute(attendance.Normalize(raws))
	if err != nil {
		// Only ErrNoRecords can surface here, and the empty case is already
		// handled above; treat anything else as internal.
		h.Log.WithError(err).Error("salary computation failed")
		writeError(w, http.StatusInternalServerError, "Failed to compute salary", "compute_error")
		return
	}

	if err := h.Store.SaveReport(ctx, report); err != nil {
		h.Log.WithError(err).Error("failed to persist salary report")
		writeError(w, http.StatusInternalServerError, "Failed to persist salary report", "store_error")
		return
	}

	h.Log.WithFields(logrus.Fields{
		"days":  len(report.Days),
		"total": report.Total.String(),
	}).Info("refresh completed")

	writeJSON(w, http.StatusOK, RefreshResponse{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Report:    toReportDTO(report),
	})
}

// Compute runs the engine on records supplied by the caller. Nothing is
// persisted; this is the raw engine contract for ad-hoc what-if requests.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request")
		return
	}

	report, err := h.Calc.Compute(attendance.Normalize(req.Records))
	if errors.Is(err, payroll.ErrNoRecords) {
		writeError(w, http.StatusBadRequest, "No attendance records provided", "empty_input")
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("salary computation failed")
		writeError(w, http.StatusInternalServerError, "Failed to compute salary", "compute_error")
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(report))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}
