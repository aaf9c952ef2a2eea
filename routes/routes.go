package routes

import (
	"net/http"

	"cuci-sepatu/controllers"
	"cuci-sepatu/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, sepatuCtrl *controllers.SepatuController) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", sepatuCtrl.Welcome)

	router.GET("/items", sepatuCtrl.GetAllSepatu)
	router.GET("/items/:id", sepatuCtrl.GetSepatuByID)
	router.POST("/items", sepatuCtrl.CreateSepatu)
	router.PUT("/items/:id", sepatuCtrl.UpdateSepatu)
	router.DELETE("/items/:id", sepatuCtrl.DeleteSepatu)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Endpoint tidak ditemukan",
		})
	})
}
