package main

import (
	"log"

	"cuci-sepatu/config"
	"cuci-sepatu/controllers"
	_ "cuci-sepatu/docs"
	"cuci-sepatu/middleware"
	"cuci-sepatu/repositories"
	"cuci-sepatu/routes"
	"cuci-sepatu/services"

	"github.com/gin-gonic/gin"
)

// @title API Cuci Sepatu
// @version 1.0
// @description REST API untuk data order cuci sepatu
// @BasePath /
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	sepatuRepo := repositories.NewSepatuRepository(config.DB)
	sepatuService := services.NewSepatuService(sepatuRepo)
	sepatuCtrl := controllers.NewSepatuController(sepatuService)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, sepatuCtrl)

	port := ":" + config.AppConfig.Port
	log.Printf("Server berjalan di http://localhost:%s", config.AppConfig.Port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
