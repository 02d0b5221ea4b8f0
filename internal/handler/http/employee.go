package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/employee"
	"github.com/segus-engineering/ops-backend-go/internal/handler/http/response"
)

// EmployeeHandler defines the employee handler interface
type EmployeeHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepository employee.EmployeeRepository
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeRepository employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{employeeRepository: employeeRepository}
}

// Me returns the authenticated employee's directory record
func (h *employeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	emp, err := h.employeeRepository.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}

// Get retrieves one employee (admin)
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.employeeRepository.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}

// List lists employees with pagination (admin)
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	employees, totalCount, err := h.employeeRepository.List(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	response.SuccessWithMeta(w, responses, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalCount,
		TotalPages: totalPages,
	})
}
