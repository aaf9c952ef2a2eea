package controllers

import (
	"errors"
	"log"
	"net/http"

	"cuci-sepatu/models"
	"cuci-sepatu/repositories"
	"cuci-sepatu/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var apiEndpoints = map[string]string{
	"GET /items":                "Dapatkan semua data sepatu",
	"GET /items?status=Selesai": "Filter sepatu berdasarkan status",
	"GET /items/:id":            "Dapatkan detail sepatu berdasarkan ID",
	"POST /items":               "Tambah data sepatu baru",
	"PUT /items/:id":            "Update data sepatu",
	"DELETE /items/:id":         "Hapus data sepatu",
}

type SepatuController struct {
	service  *services.SepatuService
	validate *validator.Validate
}

func NewSepatuController(service *services.SepatuService) *SepatuController {
	return &SepatuController{
		service:  service,
		validate: validator.New(),
	}
}

// @Summary Welcome
// @Description API welcome message with the endpoint catalog
// @Tags General
// @Produce json
// @Success 200 {object} models.WelcomeResponse
// @Router / [get]
func (ctrl *SepatuController) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, models.WelcomeResponse{
		Message:   "API Cuci Sepatu - Selamat Datang!",
		Endpoints: apiEndpoints,
	})
}

// @Summary Get all sepatu
// @Description Get all sepatu records, newest first, optionally filtered by status
// @Tags Sepatu
// @Produce json
// @Param status query string false "Filter by exact status"
// @Success 200 {object} models.ListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /items [get]
func (ctrl *SepatuController) GetAllSepatu(c *gin.Context) {
	status := c.Query("status")

	items, err := ctrl.service.GetAllSepatu(status)
	if err != nil {
		log.Printf("Failed to list sepatu: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Count:   len(items),
		Data:    items,
	})
}

// @Summary Get sepatu by ID
// @Description Get one sepatu record by its ID
// @Tags Sepatu
// @Produce json
// @Param id path string true "Sepatu ID"
// @Success 200 {object} models.DataResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /items/{id} [get]
func (ctrl *SepatuController) GetSepatuByID(c *gin.Context) {
	id := c.Param("id")

	sepatu, err := ctrl.service.GetSepatuByID(id)
	if err != nil {
		ctrl.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse{Success: true, Data: sepatu})
}

// @Summary Create sepatu
// @Description Add a new sepatu record
// @Tags Sepatu
// @Accept json
// @Produce json
// @Param sepatu body models.CreateSepatuRequest true "Sepatu data"
// @Success 201 {object} models.DataResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /items [post]
func (ctrl *SepatuController) CreateSepatu(c *gin.Context) {
	var req models.CreateSepatuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.writeIncomplete(c)
		return
	}

	if err := ctrl.validate.Struct(req); err != nil {
		ctrl.writeIncomplete(c)
		return
	}

	sepatu, err := ctrl.service.CreateSepatu(req)
	if err != nil {
		ctrl.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.DataResponse{
		Success: true,
		Message: "Data sepatu berhasil ditambahkan",
		Data:    sepatu,
	})
}

// @Summary Update sepatu
// @Description Update a sepatu record; only fields present with non-zero values change
// @Tags Sepatu
// @Accept json
// @Produce json
// @Param id path string true "Sepatu ID"
// @Param sepatu body models.UpdateSepatuRequest true "Fields to update"
// @Success 200 {object} models.DataResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /items/{id} [put]
func (ctrl *SepatuController) UpdateSepatu(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateSepatuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Permintaan tidak valid"})
		return
	}

	sepatu, err := ctrl.service.UpdateSepatu(id, req)
	if err != nil {
		ctrl.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse{
		Success: true,
		Message: "Data sepatu berhasil diupdate",
		Data:    sepatu,
	})
}

// @Summary Delete sepatu
// @Description Delete a sepatu record, returning the removed data
// @Tags Sepatu
// @Produce json
// @Param id path string true "Sepatu ID"
// @Success 200 {object} models.DataResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /items/{id} [delete]
func (ctrl *SepatuController) DeleteSepatu(c *gin.Context) {
	id := c.Param("id")

	sepatu, err := ctrl.service.DeleteSepatu(id)
	if err != nil {
		ctrl.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse{
		Success: true,
		Message: "Data sepatu berhasil dihapus",
		Data:    sepatu,
	})
}

func (ctrl *SepatuController) writeIncomplete(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
		Error:    "Data tidak lengkap",
		Required: models.RequiredFields,
	})
}

func (ctrl *SepatuController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Data tidak ditemukan"})
	case errors.Is(err, services.ErrInvalidTanggal):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Format tanggal_masuk tidak valid"})
	default:
		log.Printf("Record store error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: err.Error()})
	}
}
