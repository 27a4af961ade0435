package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/ironlog/internal/models"
	"github.com/meltforce/ironlog/internal/session"
	"github.com/meltforce/ironlog/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps engine errors onto HTTP statuses: validation failures
// are 400 (unknown resources 404), everything else is a store failure.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var verr *session.ValidationError
	switch {
	case errors.Is(err, session.ErrUnknownExercise), errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrSessionActive):
		status = http.StatusConflict
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// --- Exercise catalogue ---

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.mgr.ListExercises(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleExercisesByGroup(w http.ResponseWriter, r *http.Request) {
	grouped, err := s.mgr.ExercisesByMuscleGroup(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grouped)
}

type addExerciseRequest struct {
	Name        string             `json:"name"`
	MuscleGroup models.MuscleGroup `json:"muscle_group"`
	Equipment   string             `json:"equipment"`
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	ex, err := s.mgr.AddExercise(r.Context(), req.Name, req.MuscleGroup, req.Equipment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

type updateExerciseRequest struct {
	Name        *string             `json:"name"`
	MuscleGroup *models.MuscleGroup `json:"muscle_group"`
	Equipment   *string             `json:"equipment"`
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	var req updateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	upd := storage.ExerciseUpdate{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Equipment:   req.Equipment,
	}
	if err := s.mgr.UpdateExercise(r.Context(), chi.URLParam(r, "id"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- One-rep max ---

func (s *Server) handleCurrentOneRepMax(w http.ResponseWriter, r *http.Request) {
	orm, err := s.mgr.CurrentOneRepMax(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if orm == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no one-rep max recorded"})
		return
	}
	writeJSON(w, http.StatusOK, orm)
}

func (s *Server) handlePersonalBest(w http.ResponseWriter, r *http.Request) {
	orm, err := s.mgr.PersonalBest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if orm == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no one-rep max recorded"})
		return
	}
	writeJSON(w, http.StatusOK, orm)
}

func (s *Server) handleOneRepMaxHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.mgr.OneRepMaxHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []models.OneRepMax{}
	}
	writeJSON(w, http.StatusOK, history)
}

// --- Settings and reset ---

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.mgr.Settings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type updateBodyWeightRequest struct {
	BodyWeightKg float64 `json:"body_weight"`
}

func (s *Server) handleUpdateBodyWeight(w http.ResponseWriter, r *http.Request) {
	var req updateBodyWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	settings, err := s.mgr.UpdateBodyWeight(r.Context(), req.BodyWeightKg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.mgr.ResetAllData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
