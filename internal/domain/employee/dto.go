package employee

type EmployeeResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Position *string `json:"position,omitempty"`
	Role     string  `json:"role"`
	IsActive bool    `json:"is_active"`
	HireDate string  `json:"hire_date"`
}

// ToResponse converts an Employee entity to its API shape.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		FullName: e.FullName,
		Email:    e.Email,
		Position: e.Position,
		Role:     string(e.Role),
		IsActive: e.IsActive,
		HireDate: e.HireDate.Format("2006-01-02"),
	}
}
