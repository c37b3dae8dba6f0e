package controllers

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/service"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
)

type SignatoryInput struct {
	Table    string `json:"table" binding:"required"`
	RecordID uint   `json:"record_id" binding:"required"`
	Field    string `json:"field" binding:"required,oneof=noted_by approved_by"`
	Checked  *bool  `json:"checked" binding:"required"`
}

// ToggleSignatoryApproval flips a noted_by/approved_by checkbox. This is an
// identity check against the record's designated signatory, not a role
// check; admins cannot sign for other people.
func ToggleSignatoryApproval(c *gin.Context) {
	var in SignatoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	signatory := service.NewSignatory(config.DB)
	updated, err := signatory.ToggleFlag(in.Table, in.RecordID, in.Field, *in.Checked, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Signatory flag updated", updated)
}
