package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/ponto-inteligente/internal/config"
	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

const (
	ContextEmployeeID = "employeeID"
	ContextCompanyID  = "companyID"
	ContextRole       = "role"
)

const msgTokenInvalido = "Token inválido."

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Token não informado.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, msgTokenInvalido)
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, msgTokenInvalido)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, msgTokenInvalido)
			return
		}

		employeeID, ok1 := claims["sub"].(float64)
		companyID, ok2 := claims["empresaId"].(float64)
		role, _ := claims["role"].(string)
		if !ok1 || !ok2 {
			unauthorized(c, msgTokenInvalido)
			return
		}

		c.Set(ContextEmployeeID, uint(employeeID))
		c.Set(ContextCompanyID, uint(companyID))
		c.Set(ContextRole, models.Role(role))

		c.Next()
	}
}

// RequireAdmin deve vir depois de AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		if r, ok := role.(models.Role); !ok || r != models.RoleAdmin {
			httperr.Forbidden(c, dto.MsgAcessoNegado)
			c.Abort()
			return
		}
		c.Next()
	}
}

// EmployeeID devolve o funcionário autenticado.
func EmployeeID(c *gin.Context) uint {
	return c.GetUint(ContextEmployeeID)
}

// Caller junta funcionário, empresa e perfil gravados por AuthMiddleware.
func Caller(c *gin.Context) ponto.Caller {
	role, _ := c.Get(ContextRole)
	r, _ := role.(models.Role)
	return ponto.Caller{
		EmployeeID: c.GetUint(ContextEmployeeID),
		CompanyID:  c.GetUint(ContextCompanyID),
		Role:       r,
	}
}

func unauthorized(c *gin.Context, message string) {
	httperr.Unauthorized(c, message)
	c.Abort()
}
