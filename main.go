package main

import (
	"os"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"
	"github.com/Miraku17/PowerSystems-sub006/routes"
	"github.com/Miraku17/PowerSystems-sub006/storage"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Position{},
		&models.Permission{},
		&models.PositionPermission{},
		&models.User{},
		&models.Customer{},
		&models.Engine{},
		&models.Pump{},
		&models.JobOrderRequest{},
		&models.DailyTimeSheet{},
		&models.LeaveRequest{},
		&models.EngineServiceReport{},
		&models.PumpServiceReport{},
		&models.EngineCommissioningReport{},
		&models.PumpTeardownReport{},
		&models.KbArticle{},
		&models.AuditLog{},
		&models.Attachment{},
		&models.FormCounter{},
	)

	config.SeedPermissions()
	config.SeedPositions()
	config.SeedDefaultAdmin()
	config.SeedCounters()
	storage.Init()

	// secret override from ENV
	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 PowerSystems API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
