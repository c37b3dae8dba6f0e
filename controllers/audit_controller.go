package controllers

import (
	"net/http"
	"strconv"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs returns the audit trail, optionally filtered by table and
// record. Entries are insert-only; there is no mutation surface here.
func ListAuditLogs(c *gin.Context) {
	q := config.DB.Model(&models.AuditLog{})

	if table := c.Query("table"); table != "" {
		q = q.Where("table_name = ?", table)
	}
	if rid := c.Query("record_id"); rid != "" {
		if n, err := strconv.Atoi(rid); err == nil && n > 0 {
			q = q.Where("record_id = ?", n)
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 50
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var entries []models.AuditLog
	err := q.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "total": total, "page": page})
}
