package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"brs-backend/internal/http/middleware"
	"brs-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/trips (admin) — registers both directions of a route.
func CreateTrip(c *gin.Context) {
	var req services.CreateRouteInput
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	to, fro, err := svc.CreateRoutePair(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trips": []any{to, fro}})
}

// GET /api/reservation/trips/:id
func GetTripByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id trip tidak valid", err)
		return
	}

	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	trip, err := svc.RouteByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// GET /api/reservation/trips?source=&destination=
func GetTripsBetweenStops(c *gin.Context) {
	source := strings.TrimSpace(c.Query("source"))
	destination := strings.TrimSpace(c.Query("destination"))
	if source == "" || destination == "" {
		RespondError(c, http.StatusBadRequest, "parameter source dan destination wajib diisi", nil)
		return
	}

	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	trips, err := svc.RoutesBetween(source, destination)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}
