package controllers

import (
	"net/http"
	"time"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"
	"github.com/Miraku17/PowerSystems-sub006/service"

	"github.com/gin-gonic/gin"
)

type TimeSheetInput struct {
	WorkDate         time.Time `json:"work_date" binding:"required"`
	TimeIn           string    `json:"time_in"`
	TimeOut          string    `json:"time_out"`
	HoursTotal       float64   `json:"hours_total"`
	Activity         string    `json:"activity" binding:"required"`
	JobOrderID       *uint     `json:"job_order_id"`
	NotedByUserID    *uint     `json:"noted_by_user_id"`
	ApprovedByUserID *uint     `json:"approved_by_user_id"`
}

func CreateTimeSheet(c *gin.Context) {
	var in TimeSheetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sheet := models.DailyTimeSheet{
		WorkDate:   in.WorkDate,
		TimeIn:     in.TimeIn,
		TimeOut:    in.TimeOut,
		HoursTotal: in.HoursTotal,
		Activity:   in.Activity,
		JobOrderID: in.JobOrderID,
		Status:     "Pending",
	}
	sheet.ApprovalStatus = models.ApprovalPendingLevel1
	sheet.NotedByUserID = in.NotedByUserID
	sheet.ApprovedByUserID = in.ApprovedByUserID
	sheet.CreatedBy = uid

	if err := config.DB.Create(&sheet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Time sheet filed", "data": sheet})
}

func GetTimeSheets(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	q := config.DB.Model(&models.DailyTimeSheet{}).
		Where("deleted_at IS NULL").
		Order("work_date DESC")

	perms := service.NewPermissions(config.DB)
	q, err = perms.VisibilityFilter(q, "time_sheets", uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var sheets []models.DailyTimeSheet
	if err := q.Find(&sheets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i := range sheets {
		sheets[i].Status = service.NormalizeStatus(sheets[i].Status)
	}
	c.JSON(http.StatusOK, gin.H{"data": sheets})
}

func GetTimeSheetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	q := config.DB.Where("deleted_at IS NULL")
	perms := service.NewPermissions(config.DB)
	q, err = perms.VisibilityFilter(q, "time_sheets", uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var sheet models.DailyTimeSheet
	if err := q.First(&sheet, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Time sheet not found"})
		return
	}

	sheet.Status = service.NormalizeStatus(sheet.Status)
	c.JSON(http.StatusOK, gin.H{"data": sheet})
}

func UpdateTimeSheet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var sheet models.DailyTimeSheet
	if err := config.DB.Where("deleted_at IS NULL").First(&sheet, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Time sheet not found"})
		return
	}

	var in TimeSheetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"work_date":           in.WorkDate,
		"time_in":             in.TimeIn,
		"time_out":            in.TimeOut,
		"hours_total":         in.HoursTotal,
		"activity":            in.Activity,
		"job_order_id":        in.JobOrderID,
		"noted_by_user_id":    in.NotedByUserID,
		"approved_by_user_id": in.ApprovedByUserID,
	}
	if err := config.DB.Model(&sheet).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.First(&sheet, sheet.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Time sheet updated", "data": sheet})
}
