package controllers

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"

	"github.com/gin-gonic/gin"
)

type KbArticleInput struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Body     string `json:"body" binding:"required"`
}

func CreateKbArticle(c *gin.Context) {
	var in KbArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	article := models.KbArticle{
		Title:    in.Title,
		Category: in.Category,
		Body:     in.Body,
	}
	article.CreatedBy = uid

	if err := config.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Article published", "data": article})
}

func GetKbArticles(c *gin.Context) {
	q := config.DB.Model(&models.KbArticle{}).Where("deleted_at IS NULL")
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var articles []models.KbArticle
	if err := q.Order("updated_at DESC").Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": articles})
}

func GetKbArticleByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var article models.KbArticle
	if err := config.DB.Where("deleted_at IS NULL").First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": article})
}

func UpdateKbArticle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var article models.KbArticle
	if err := config.DB.Where("deleted_at IS NULL").First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var in KbArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":    in.Title,
		"category": in.Category,
		"body":     in.Body,
	}
	if err := config.DB.Model(&article).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.First(&article, article.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Article updated", "data": article})
}
