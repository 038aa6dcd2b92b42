package handlers

import (
	"net/http"

	"brs-backend/internal/http/middleware"
	"brs-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type bookTicketRequest struct {
	TripID   int64  `json:"trip_id"`
	TripDate string `json:"trip_date"`
}

// POST /api/reservation/bookticket (auth)
func BookTicket(c *gin.Context) {
	var req bookTicketRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.TripID <= 0 {
		RespondError(c, http.StatusBadRequest, "trip_id tidak valid", nil)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	ticket, err := svc.BookTicket(req.TripID, req.TripDate, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

// GET /api/reservation/tickets (auth) — the caller's own tickets.
func GetMyTickets(c *gin.Context) {
	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	tickets, err := svc.ByPassenger(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}
