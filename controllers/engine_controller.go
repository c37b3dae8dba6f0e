package controllers

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"

	"github.com/gin-gonic/gin"
)

type EngineInput struct {
	SerialNo   string  `json:"serial_no" binding:"required"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	RatingKW   float64 `json:"rating_kw"`
	CustomerID *uint   `json:"customer_id"`
}

func CreateEngine(c *gin.Context) {
	var in EngineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	var exist models.Engine
	if err := config.DB.Where("serial_no = ?", in.SerialNo).First(&exist).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Serial number already registered"})
		return
	}

	engine := models.Engine{
		SerialNo:   in.SerialNo,
		Brand:      in.Brand,
		Model:      in.Model,
		RatingKW:   in.RatingKW,
		CustomerID: in.CustomerID,
	}
	if err := config.DB.Create(&engine).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.Preload("Customer").First(&engine, engine.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Engine registered", "data": engine})
}

func GetAllEngines(c *gin.Context) {
	var engines []models.Engine
	if err := config.DB.Preload("Customer").Find(&engines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": engines})
}

func GetEngineByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var engine models.Engine
	if err := config.DB.Preload("Customer").First(&engine, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Engine not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": engine})
}

func UpdateEngine(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var engine models.Engine
	if err := config.DB.First(&engine, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Engine not found"})
		return
	}

	var in EngineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if in.SerialNo != engine.SerialNo {
		var exist models.Engine
		if err := config.DB.Where("serial_no = ?", in.SerialNo).First(&exist).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Serial number already registered"})
			return
		}
	}

	updates := models.Engine{
		SerialNo:   in.SerialNo,
		Brand:      in.Brand,
		Model:      in.Model,
		RatingKW:   in.RatingKW,
		CustomerID: in.CustomerID,
	}
	if err := config.DB.Model(&engine).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.Preload("Customer").First(&engine, engine.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Engine updated", "data": engine})
}

// DeleteEngine is guarded by the legacy admin-role check at the route level.
func DeleteEngine(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var engine models.Engine
	if err := config.DB.First(&engine, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Engine not found"})
		return
	}

	if err := config.DB.Delete(&engine).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete engine"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Engine deleted"})
}
