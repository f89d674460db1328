package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/alexanderramin/mesoforge/internal/importer"
	"github.com/alexanderramin/mesoforge/internal/repository"
	"github.com/alexanderramin/mesoforge/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerateProgram(w http.ResponseWriter, r *http.Request) {
	var req contract.GenerateProgramRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.svc.Programs.Generate(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	status := http.StatusCreated
	if !resp.Persisted {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.svc.Programs.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]contract.ProgramSummary, 0, len(programs))
	for _, p := range programs {
		out = append(out, contract.NewProgramSummary(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Programs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewProgramView(p))
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Programs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetPeriod(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "period must be a number")
		return
	}
	p, err := s.svc.Programs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	period := p.Period(number)
	if period == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("program has no period %d", number))
		return
	}
	writeJSON(w, http.StatusOK, contract.NewPeriodView(*period))
}

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	period, err := strconv.Atoi(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "period must be a number")
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "day must be a number")
		return
	}
	logs, err := s.svc.Sessions.ListSets(r.Context(), chi.URLParam(r, "id"), period, day)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewSetLogViews(logs))
}

func (s *Server) handlePlanSession(w http.ResponseWriter, r *http.Request) {
	var req contract.SessionPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.svc.Sessions.Plan(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	var req contract.LogSetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.svc.Sessions.LogSet(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleBrief(w http.ResponseWriter, r *http.Request) {
	var req contract.BriefRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := s.svc.Sessions.Brief(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFatigueCheck(w http.ResponseWriter, r *http.Request) {
	var req contract.FatigueCheckRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VelocityLossPct < 0 {
		writeError(w, http.StatusBadRequest, "velocity_loss_pct cannot be negative")
		return
	}
	writeJSON(w, http.StatusOK, contract.NewFatigueCheckResponse(req.VelocityLossPct))
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.svc.Catalog.List(r.Context(), r.URL.Query().Get("muscle"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]contract.CatalogEntry, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, contract.NewCatalogEntry(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleImportExercises(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading body: "+err.Error())
		return
	}
	format := importer.FormatJSON
	if isYAML(r.Header.Get("Content-Type")) {
		format = importer.FormatYAML
	}
	schema, err := importer.ParseCatalogSchema(data, format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.svc.Catalog.ImportSchema(r.Context(), schema)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func isYAML(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/yaml" || mt == "application/x-yaml" || mt == "text/yaml"
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals := s.svc.Goals.List(r.Context())
	out := make([]contract.GoalView, 0, len(goals))
	for _, g := range goals {
		out = append(out, contract.NewGoalView(g))
	}
	writeJSON(w, http.StatusOK, out)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrUnknownGoal),
		errors.Is(err, service.ErrUnknownFrequency):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
