package controllers

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Position").Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Users loaded", users)
}

type AdminCreateUserInput struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"full_name" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	Address    string `json:"address" binding:"required"` // the user's branch
	Role       string `json:"role"`
	PositionID *uint  `json:"position_id"`
}

func AdminCreateUser(c *gin.Context) {
	var in AdminCreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists models.User
	if err := config.DB.Where("username = ? OR email = ?", in.Username, in.Email).First(&exists).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already taken"})
		return
	}

	role := in.Role
	if role != "admin" {
		role = "user"
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Address:      in.Address,
		AvatarURL:    utils.DefaultAvatar(in.FullName),
		PasswordHash: string(hash),
		Role:         role,
		PositionID:   in.PositionID,
		IsActive:     true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	utils.Success(c, "User created", user)
}

type SetPositionInput struct {
	PositionID *uint `json:"position_id"`
	IsActive   *bool `json:"is_active"`
}

func AdminSetUserPosition(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var in SetPositionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.PositionID != nil {
		var pos models.Position
		if err := config.DB.First(&pos, *in.PositionID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Position not found"})
			return
		}
		updates["position_id"] = *in.PositionID
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}
	config.DB.Preload("Position").First(&user, user.ID)
	utils.Success(c, "User updated", user)
}

func AdminListPositions(c *gin.Context) {
	var positions []models.Position
	if err := config.DB.Order("approval_level, name").Find(&positions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Positions loaded", positions)
}

func AdminListPermissions(c *gin.Context) {
	var perms []models.Permission
	if err := config.DB.Order("module, action").Find(&perms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, "Permissions loaded", perms)
}

type GrantInput struct {
	PermissionID uint   `json:"permission_id" binding:"required"`
	Scope        string `json:"scope" binding:"required,oneof=global branch"`
}

// AdminSetPositionPermissions replaces a position's grants wholesale.
func AdminSetPositionPermissions(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pos models.Position
	if err := config.DB.First(&pos, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Position not found"})
		return
	}

	var in []GrantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Where("position_id = ?", pos.ID).Delete(&models.PositionPermission{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update grants"})
		return
	}
	for _, g := range in {
		config.DB.Create(&models.PositionPermission{
			PositionID:   pos.ID,
			PermissionID: g.PermissionID,
			Scope:        g.Scope,
		})
	}
	utils.Success(c, "Position permissions updated", nil)
}

// AdminResetPasswordLink issues a reset link for a user, built from the
// configured site base URL.
func AdminResetPasswordLink(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	token, err := utils.GenerateResetToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue reset token"})
		return
	}

	utils.Success(c, "Reset link generated", gin.H{
		"reset_url": config.SiteBaseURL + "/reset-password?token=" + token,
	})
}
