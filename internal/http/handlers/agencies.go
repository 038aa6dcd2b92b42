package handlers

import (
	"net/http"

	"brs-backend/internal/http/middleware"
	"brs-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createAgencyRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// POST /api/agencies (admin). The authenticated user becomes the owner.
func CreateAgency(c *gin.Context) {
	var req createAgencyRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AgencyService{RequestID: middleware.GetRequestID(c)}
	agency, err := svc.AddAgency(req.Name, req.Details, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"agency": agency})
}

type createCabRequest struct {
	Code     string `json:"code"`
	Capacity int    `json:"capacity"`
	Make     string `json:"make"`
}

// POST /api/agencies/:code/cabs (admin)
func CreateCab(c *gin.Context) {
	var req createCabRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AgencyService{RequestID: middleware.GetRequestID(c)}
	cab, err := svc.AddCab(c.Param("code"), req.Code, req.Make, req.Capacity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cab": cab})
}

// GET /api/agencies/:code/trips (admin)
func GetAgencyTrips(c *gin.Context) {
	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	trips, err := svc.AgencyTrips(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}
