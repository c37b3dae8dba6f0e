package controllers

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/service"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
)

type StatusInput struct {
	Status string `json:"status"`
}

// UpdateFormStatus changes the business status of a form record. Requires
// the approvals.edit grant; branch-scoped approvers can only touch records
// created in their own branch.
func UpdateFormStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	workflow := service.NewWorkflow(config.DB)
	updated, err := workflow.UpdateStatus(c.Param("type"), id, in.Status, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Status updated", updated)
}

type DecisionInput struct {
	Notes string `json:"notes"`
}

func ApproveForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in DecisionInput
	_ = c.ShouldBindJSON(&in) // notes are optional

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	workflow := service.NewWorkflow(config.DB)
	updated, err := workflow.Approve(c.Param("type"), id, uid, in.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Record approved", updated)
}

func RejectForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in DecisionInput
	_ = c.ShouldBindJSON(&in)

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	workflow := service.NewWorkflow(config.DB)
	updated, err := workflow.Reject(c.Param("type"), id, uid, in.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Record rejected", updated)
}
