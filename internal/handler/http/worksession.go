package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/worksession"
	"github.com/segus-engineering/ops-backend-go/internal/handler/http/response"
)

// WorkSessionHandler defines the work session handler interface
type WorkSessionHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Pause(w http.ResponseWriter, r *http.Request)
	Resume(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMySessions(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type workSessionHandlerImpl struct {
	sessionService worksession.WorkSessionService
}

// NewWorkSessionHandler creates a new work session handler
func NewWorkSessionHandler(sessionService worksession.WorkSessionService) WorkSessionHandler {
	return &workSessionHandlerImpl{sessionService: sessionService}
}

// Start opens a new work session for the authenticated employee
func (h *workSessionHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req worksession.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.sessionService.Start(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work session started", result)
}

// Pause pauses an active work session
func (h *workSessionHandlerImpl) Pause(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessionID := chi.URLParam(r, "id")
	result, err := h.sessionService.Pause(r.Context(), employeeID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work session paused", result)
}

// Resume resumes a paused work session
func (h *workSessionHandlerImpl) Resume(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessionID := chi.URLParam(r, "id")
	result, err := h.sessionService.Resume(r.Context(), employeeID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work session resumed", result)
}

// End completes a work session
func (h *workSessionHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessionID := chi.URLParam(r, "id")
	result, err := h.sessionService.End(r.Context(), employeeID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work session ended", result)
}

// Get retrieves one work session
func (h *workSessionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	sessionID := chi.URLParam(r, "id")
	result, err := h.sessionService.Get(r.Context(), employeeID, isAdminFromContext(r), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func sessionFilterFromQuery(r *http.Request) worksession.SessionFilter {
	return worksession.SessionFilter{
		EmployeeID: getStringQueryParam(r, "employee_id"),
		StartDate:  getStringQueryParam(r, "start_date"),
		EndDate:    getStringQueryParam(r, "end_date"),
		Status:     getStringQueryParam(r, "status"),
		Page:       getIntQueryParam(r, "page", 1),
		Limit:      getIntQueryParam(r, "limit", 20),
		SortOrder:  r.URL.Query().Get("sort_order"),
	}
}

// GetMySessions lists the authenticated employee's sessions
func (h *workSessionHandlerImpl) GetMySessions(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.sessionService.GetMySessions(r.Context(), employeeID, sessionFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Sessions, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// List lists sessions across employees (admin)
func (h *workSessionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessionService.List(r.Context(), sessionFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Sessions, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}
