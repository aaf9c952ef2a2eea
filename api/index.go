package api

import (
	"net/http"
	"sync"

	"cuci-sepatu/config"
	"cuci-sepatu/controllers"
	_ "cuci-sepatu/docs"
	"cuci-sepatu/middleware"
	"cuci-sepatu/repositories"
	"cuci-sepatu/routes"
	"cuci-sepatu/services"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp builds the router once per process. On the serverless host
// the platform calls Handler directly; no listener is opened.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()

		sepatuRepo := repositories.NewSepatuRepository(config.DB)
		sepatuService := services.NewSepatuService(sepatuRepo)
		sepatuCtrl := controllers.NewSepatuController(sepatuService)

		router = gin.New()
		router.Use(middleware.RecoveryMiddleware())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, sepatuCtrl)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
