package handlers

import (
	"net/http"

	"brs-backend/internal/http/middleware"
	"brs-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reservation/stops
func GetStops(c *gin.Context) {
	svc := services.AgencyService{RequestID: middleware.GetRequestID(c)}
	stops, err := svc.Stops()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stops": stops})
}

type createStopRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// POST /api/stops (admin)
func CreateStop(c *gin.Context) {
	var req createStopRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AgencyService{RequestID: middleware.GetRequestID(c)}
	stop, err := svc.AddStop(req.Code, req.Name, req.Detail)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stop": stop})
}
