package controllers

import (
	"net/http"
	"time"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"
	"github.com/Miraku17/PowerSystems-sub006/service"

	"github.com/gin-gonic/gin"
)

type LeaveRequestInput struct {
	LeaveType string    `json:"leave_type" binding:"required,oneof=vacation sick emergency unpaid"`
	DateFrom  time.Time `json:"date_from" binding:"required"`
	DateTo    time.Time `json:"date_to" binding:"required"`
	Reason    string    `json:"reason"`
}

func CreateLeaveRequest(c *gin.Context) {
	var in LeaveRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if in.DateTo.Before(in.DateFrom) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_to is before date_from"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	leave := models.LeaveRequest{
		LeaveType: in.LeaveType,
		DateFrom:  in.DateFrom,
		DateTo:    in.DateTo,
		Reason:    in.Reason,
		Status:    "Pending",
	}
	leave.CreatedBy = uid

	if err := config.DB.Create(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Leave request filed", "data": leave})
}

func GetLeaveRequests(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	q := config.DB.Model(&models.LeaveRequest{}).
		Where("deleted_at IS NULL").
		Order("date_from DESC")

	perms := service.NewPermissions(config.DB)
	q, err = perms.VisibilityFilter(q, "leave_management", uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var leaves []models.LeaveRequest
	if err := q.Find(&leaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": leaves})
}

func GetLeaveRequestByID(c *gin.Context) {
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
	q, err = perms.VisibilityFilter(q, "leave_management", uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var leave models.LeaveRequest
	if err := q.First(&leave, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leave request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": leave})
}

func UpdateLeaveRequest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var leave models.LeaveRequest
	if err := config.DB.Where("deleted_at IS NULL").First(&leave, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leave request not found"})
		return
	}

	var in LeaveRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"leave_type": in.LeaveType,
		"date_from":  in.DateFrom,
		"date_to":    in.DateTo,
		"reason":     in.Reason,
	}
	if err := config.DB.Model(&leave).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.First(&leave, leave.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Leave request updated", "data": leave})
}
