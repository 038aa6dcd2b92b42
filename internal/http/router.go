package api

import (
	"log"
	stdhttp "net/http"

	intconfig "brs-backend/internal/config"
	h "brs-backend/internal/http/handlers"
	"brs-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env))
		auth.POST("/register", h.Register)

		// Reservation surface
		reservation := api.Group("/reservation")
		reservation.GET("/stops", h.GetStops)
		reservation.GET("/trips", h.GetTripsBetweenStops)
		reservation.GET("/trips/:id", h.GetTripByID)
		reservation.GET("/tripschedules", h.GetTripSchedules)
		reservation.POST("/bookticket", middleware.RequireAuth(secret), h.BookTicket)
		reservation.GET("/tickets", middleware.RequireAuth(secret), h.GetMyTickets)

		// Tickets
		tickets := api.Group("/tickets", middleware.RequireAuth(secret))
		tickets.GET("/:id/e-ticket", h.GetTicketETicketPDF)

		// Agency management (admin only)
		admin := api.Group("", middleware.RequireAuth(secret), middleware.RequireRoles("admin"))
		admin.POST("/agencies", h.CreateAgency)
		admin.POST("/agencies/:code/cabs", h.CreateCab)
		admin.GET("/agencies/:code/trips", h.GetAgencyTrips)
		admin.POST("/stops", h.CreateStop)
		admin.POST("/trips", h.CreateTrip)
	}

	return r
}
