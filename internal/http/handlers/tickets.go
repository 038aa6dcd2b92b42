package handlers

import (
	"net/http"
	"strconv"

	"brs-backend/internal/http/middleware"
	"brs-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GetTicketETicketPDF returns the ticket's e-ticket (inline PDF). Only the
// owning passenger may fetch it.
func GetTicketETicketPDF(c *gin.Context) {
	tid, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || tid <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_ticket_id", "id ticket tidak valid", err)
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	ticket, err := svc.Get(tid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if ticket.PassengerID != middleware.GetUserID(c) {
		respondError(c, http.StatusForbidden, "forbidden", "ticket milik penumpang lain", nil)
		return
	}

	pdfBytes, filename, err := svc.GenerateETicket(tid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
