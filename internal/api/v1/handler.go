package v1

import (
	"encoding/json"
	"net/http"

	"bodygoals/internal/service"
	"bodygoals/internal/store"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/users/{userID}/progress", h.handleProgress)

	r.Post("/users/{userID}/goals", h.handleCreateGoal)
	r.Get("/users/{userID}/goals", h.handleListGoals)
	r.Get("/users/{userID}/goals/active", h.handleActiveGoal)
	r.Post("/goals/{goalID}", h.handleUpdateGoal)
	r.Post("/goals/{goalID}/deactivate", h.handleDeactivateGoal)

	r.Post("/users/{userID}/entries", h.handleAddEntry)
	r.Get("/users/{userID}/entries", h.handleListEntries)
	r.Post("/entries/{entryID}/delete", h.handleDeleteEntry)

	return r
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id", map[string]string{"user_id": "invalid"})
		return
	}
	data, err := h.service.GetGoalProgress(r.Context(), userID)
	if err != nil {
		log.Errorf("get goal progress for %s: %s", userID, err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProgress(data))
}

func (h *Handler) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id", map[string]string{"user_id": "invalid"})
		return
	}
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	input, fields := req.toGoalInput(userID)
	if len(fields) > 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid goal", fields)
		return
	}
	id, err := h.service.CreateGoal(r.Context(), input)
	if err != nil {
		log.Errorf("create goal for %s: %s", userID, err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id", map[string]string{"user_id": "invalid"})
		return
	}
	goals, err := h.service.ListGoals(r.Context(), userID)
	if err != nil {
		log.Errorf("list goals for %s: %s", userID, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to list goals", nil)
		return
	}
	items := make([]goalDetails, 0, len(goals))
	for _, goal := range goals {
		items = append(items, mapGoal(goal))
	}
	writeJSON(w, http.StatusOK, goalsResponse{Items: items})
}

func (h *Handler) handleActiveGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id", map[string]string{"user_id": "invalid"})
		return
	}
	goal, err := h.service.GetActiveGoal(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapGoal(goal))
}

func (h *Handler) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := parseID(chi.URLParam(r, "goalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid goal id", map[string]string{"goal_id": "invalid"})
		return
	}
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	input, fields := req.toGoalUpdateInput(goalID)
	if len(fields) > 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid goal", fields)
		return
	}
	if err := h.service.UpdateGoal(r.Context(), input); err != nil {
		log.Errorf("update goal %d: %s", goalID, err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleDeactivateGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := parseID(chi.URLParam(r, "goalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid goal id", map[string]string{"goal_id": "invalid"})
		return
	}
	if err := h.service.DeactivateGoal(r.Context(), goalID); err != nil {
		log.Errorf("deactivate goal %d: %s", goalID, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to deactivate goal", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id", map[string]string{"user_id": "invalid"})
		return
	}
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if req.Weight <= 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid weight", map[string]string{"weight": "must be positive"})
		return
	}
	id, err := h.service.AddEntry(r.Context(), store.EntryInput{
		UserID:         userID,
		Weight:         req.Weight,
		BodyFatPercent: req.BodyFatPercent,
		MuscleMass:     req.MuscleMass,
		MeasuredAt:     req.MeasuredAt,
	})
	if err != nil {
		log.Errorf("add entry for %s: %s", userID, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to add entry", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id", map[string]string{"user_id": "invalid"})
		return
	}
	since, err := parseOptionalTime(r.URL.Query().Get("since"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid since", map[string]string{"since": "RFC3339 expected"})
		return
	}
	entries, err := h.service.ListEntries(r.Context(), userID, since)
	if err != nil {
		log.Errorf("list entries for %s: %s", userID, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to list entries", nil)
		return
	}
	items := make([]entryDetails, 0, len(entries))
	for _, entry := range entries {
		items = append(items, mapEntry(entry))
	}
	writeJSON(w, http.StatusOK, entriesResponse{Items: items})
}

func (h *Handler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseID(chi.URLParam(r, "entryID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid entry id", map[string]string{"entry_id": "invalid"})
		return
	}
	if err := h.service.DeleteEntry(r.Context(), entryID); err != nil {
		log.Errorf("delete entry %d: %s", entryID, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to delete entry", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
