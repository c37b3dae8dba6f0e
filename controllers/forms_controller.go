package controllers

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/service"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
)

// SoftDeleteForm marks a form record deleted. The record and its attached
// files stay in place so it can be restored later.
func SoftDeleteForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	lifecycle := service.NewLifecycle(config.DB)
	updated, err := lifecycle.SoftDelete(c.Param("type"), id, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Record deleted", updated)
}

type RestoreInput struct {
	FormType string `json:"form_type" binding:"required"`
	ID       uint   `json:"id" binding:"required"`
}

func RestoreForm(c *gin.Context) {
	var in RestoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	lifecycle := service.NewLifecycle(config.DB)
	updated, err := lifecycle.Restore(in.FormType, in.ID, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Record restored", updated)
}

// ListDeletedForms shows the restorable records of one form type.
func ListDeletedForms(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	lifecycle := service.NewLifecycle(config.DB)
	rows, err := lifecycle.ListDeleted(c.Param("type"), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
