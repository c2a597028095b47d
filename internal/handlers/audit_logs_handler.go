package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/middleware"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/timezone"
)

type AuditLogsHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, logger *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, logger: logger.Named("audit_logs_handler")}
}

type auditLogsPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// GET /api/auditoria (ROLE_ADMIN), sempre restrito à empresa do token
func (h *AuditLogsHandler) List(c *gin.Context) {
	companyID := c.GetUint(middleware.ContextCompanyID)

	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("empresa_id = ?", companyID)

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	if fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	logs := []models.AuditLog{}
	if err := q.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, auditLogsPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
