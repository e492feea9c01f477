// controllers/slots.go
package controllers

import (
	"errors"
	"net/http"

	"reservabook-backend/services"
	"reservabook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SlotController struct {
	slots *services.SlotService
}

func NewSlotController(db *gorm.DB) *SlotController {
	return &SlotController{slots: services.NewSlotService(db)}
}

// GetSlots returns the availability view for a date
func (sc *SlotController) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing date parameter (YYYY-MM-DD)")
		return
	}

	slots, err := sc.slots.SlotsForDate(dateStr)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, slots)
}
