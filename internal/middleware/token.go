package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/ponto-inteligente/internal/config"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

// GenerateToken assina o token com as claims lidas por AuthMiddleware.
func GenerateToken(cfg *config.Config, employee *models.Employee) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       employee.ID,
		"empresaId": employee.CompanyID,
		"role":      string(employee.Role),
		"exp":       now.Add(cfg.JWTExpiration).Unix(),
		"iat":       now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
