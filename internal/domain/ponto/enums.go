package ponto

import "github.com/BruksfildServices01/ponto-inteligente/internal/models"

var timeEntryTypes = map[models.TimeEntryType]struct{}{
	models.InicioTrabalho:  {},
	models.TerminoTrabalho: {},
	models.InicioAlmoco:    {},
	models.TerminoAlmoco:   {},
	models.InicioPausa:     {},
	models.TerminoPausa:    {},
}

func ParseTimeEntryType(s string) (models.TimeEntryType, bool) {
	t := models.TimeEntryType(s)
	if _, ok := timeEntryTypes[t]; !ok {
		return "", false
	}
	return t, true
}

func IsAdmin(role models.Role) bool {
	return role == models.RoleAdmin
}
