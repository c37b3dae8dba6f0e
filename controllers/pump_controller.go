package controllers

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"

	"github.com/gin-gonic/gin"
)

type PumpInput struct {
	SerialNo    string  `json:"serial_no" binding:"required"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	FlowRateGPM float64 `json:"flow_rate_gpm"`
	HeadMeters  float64 `json:"head_meters"`
	CustomerID  *uint   `json:"customer_id"`
}

func CreatePump(c *gin.Context) {
	var in PumpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	var exist models.Pump
	if err := config.DB.Where("serial_no = ?", in.SerialNo).First(&exist).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Serial number already registered"})
		return
	}

	pump := models.Pump{
		SerialNo:    in.SerialNo,
		Brand:       in.Brand,
		Model:       in.Model,
		FlowRateGPM: in.FlowRateGPM,
		HeadMeters:  in.HeadMeters,
		CustomerID:  in.CustomerID,
	}
	if err := config.DB.Create(&pump).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.Preload("Customer").First(&pump, pump.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Pump registered", "data": pump})
}

func GetAllPumps(c *gin.Context) {
	var pumps []models.Pump
	if err := config.DB.Preload("Customer").Find(&pumps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pumps})
}

func GetPumpByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pump models.Pump
	if err := config.DB.Preload("Customer").First(&pump, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pump not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pump})
}

func UpdatePump(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pump models.Pump
	if err := config.DB.First(&pump, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pump not found"})
		return
	}

	var in PumpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if in.SerialNo != pump.SerialNo {
		var exist models.Pump
		if err := config.DB.Where("serial_no = ?", in.SerialNo).First(&exist).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Serial number already registered"})
			return
		}
	}

	updates := models.Pump{
		SerialNo:    in.SerialNo,
		Brand:       in.Brand,
		Model:       in.Model,
		FlowRateGPM: in.FlowRateGPM,
		HeadMeters:  in.HeadMeters,
		CustomerID:  in.CustomerID,
	}
	if err := config.DB.Model(&pump).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.Preload("Customer").First(&pump, pump.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Pump updated", "data": pump})
}

// DeletePump is guarded by the legacy admin-role check at the route level.
func DeletePump(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pump models.Pump
	if err := config.DB.First(&pump, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pump not found"})
		return
	}

	if err := config.DB.Delete(&pump).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pump"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pump deleted"})
}
