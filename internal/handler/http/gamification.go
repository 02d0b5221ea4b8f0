package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/handler/http/response"
)

// GamificationHandler defines the gamification handler interface
type GamificationHandler interface {
	// Objectives
	SetObjective(w http.ResponseWriter, r *http.Request)
	GetMyObjectives(w http.ResponseWriter, r *http.Request)

	// Daily outcomes & monthly aggregates
	RecordDailyOutcome(w http.ResponseWriter, r *http.Request)
	RecomputeMonth(w http.ResponseWriter, r *http.Request)
	GetMyMonthly(w http.ResponseWriter, r *http.Request)

	// Stats & leaderboard
	RecomputeStats(w http.ResponseWriter, r *http.Request)
	GetMyStats(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)

	// Badges
	CreateBadge(w http.ResponseWriter, r *http.Request)
	UpdateBadge(w http.ResponseWriter, r *http.Request)
	ListBadges(w http.ResponseWriter, r *http.Request)
	GetMyBadges(w http.ResponseWriter, r *http.Request)
}

type gamificationHandlerImpl struct {
	gamificationService gamification.GamificationService
}

// NewGamificationHandler creates a new gamification handler
func NewGamificationHandler(gamificationService gamification.GamificationService) GamificationHandler {
	return &gamificationHandlerImpl{gamificationService: gamificationService}
}

// SetObjective creates a daily objective for an employee (admin)
func (h *gamificationHandlerImpl) SetObjective(w http.ResponseWriter, r *http.Request) {
	createdBy := getEmployeeIDFromContext(r)
	if createdBy == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req gamification.SetObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gamificationService.SetObjective(r.Context(), createdBy, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Objective set", result)
}

// GetMyObjectives lists the authenticated employee's objectives
func (h *gamificationHandlerImpl) GetMyObjectives(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	result, err := h.gamificationService.GetMyObjectives(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecordDailyOutcome scores one employee-day (admin)
func (h *gamificationHandlerImpl) RecordDailyOutcome(w http.ResponseWriter, r *http.Request) {
	var req gamification.RecordDailyOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gamificationService.RecordDailyOutcome(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily outcome recorded", result)
}

// RecomputeMonth re-aggregates one employee-month (admin)
func (h *gamificationHandlerImpl) RecomputeMonth(w http.ResponseWriter, r *http.Request) {
	var req gamification.RecomputeMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gamificationService.RecomputeMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month recomputed", result)
}

// GetMyMonthly returns one of the authenticated employee's monthly aggregates
func (h *gamificationHandlerImpl) GetMyMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year := getIntQueryParam(r, "year", 0)
	month := getIntQueryParam(r, "month", 0)

	result, err := h.gamificationService.GetMonthly(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecomputeStats re-derives an employee's all-time stats (admin)
func (h *gamificationHandlerImpl) RecomputeStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.gamificationService.RecomputeStats(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stats recomputed", result)
}

// GetMyStats returns the authenticated employee's cached stats
func (h *gamificationHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.gamificationService.GetMyStats(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Leaderboard returns the ranked top employees
func (h *gamificationHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", 10)

	result, err := h.gamificationService.Leaderboard(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateBadge adds a badge catalog entry (admin)
func (h *gamificationHandlerImpl) CreateBadge(w http.ResponseWriter, r *http.Request) {
	var req gamification.CreateBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gamificationService.CreateBadge(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Badge created", result)
}

// UpdateBadge edits a badge catalog entry (admin)
func (h *gamificationHandlerImpl) UpdateBadge(w http.ResponseWriter, r *http.Request) {
	badgeID := chi.URLParam(r, "id")
	if badgeID == "" {
		response.BadRequest(w, "Badge ID is required", nil)
		return
	}

	var req gamification.UpdateBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gamificationService.UpdateBadge(r.Context(), badgeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Badge updated", result)
}

// ListBadges returns the badge catalog
func (h *gamificationHandlerImpl) ListBadges(w http.ResponseWriter, r *http.Request) {
	result, err := h.gamificationService.ListBadges(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyBadges returns the authenticated employee's earned badges
func (h *gamificationHandlerImpl) GetMyBadges(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.gamificationService.GetMyBadges(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
