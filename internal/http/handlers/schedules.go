package handlers

import (
	"net/http"
	"strings"

	"brs-backend/internal/http/middleware"
	"brs-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reservation/tripschedules?source=&destination=&date=
// Read-only availability: never creates schedule rows.
func GetTripSchedules(c *gin.Context) {
	source := strings.TrimSpace(c.Query("source"))
	destination := strings.TrimSpace(c.Query("destination"))
	date := strings.TrimSpace(c.Query("date"))
	if source == "" || destination == "" || date == "" {
		RespondError(c, http.StatusBadRequest, "parameter source, destination dan date wajib diisi", nil)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	availability, err := svc.Availability(source, destination, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": availability})
}
