package ponto

import "github.com/BruksfildServices01/ponto-inteligente/internal/models"

// Caller é o funcionário autenticado que fez a requisição.
type Caller struct {
	EmployeeID uint
	CompanyID  uint
	Role       models.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// Reaches diz se o funcionário pertence à empresa de quem chamou.
func (c Caller) Reaches(e *models.Employee) bool {
	return e != nil && e.CompanyID == c.CompanyID
}
