// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"reservabook-backend/models"
	"reservabook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ServiceController serves the read-only service catalog.
type ServiceController struct {
	db *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{db: db}
}

type serviceResponse struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
	Price       string `json:"price"`
}

func newServiceResponse(s models.Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		DurationMin: s.DurationMin,
		Price:       s.PriceLabel(),
	}
}

// GetServices retrieves all services, ordered by id
func (sc *ServiceController) GetServices(c *gin.Context) {
	var services []models.Service
	if err := sc.db.Order("id").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, newServiceResponse(s))
	}

	c.JSON(http.StatusOK, out)
}

// GetService retrieves a single service by code
func (sc *ServiceController) GetService(c *gin.Context) {
	code := c.Param("code")

	var service models.Service
	if err := sc.db.Where("code = ?", code).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, newServiceResponse(service))
}
