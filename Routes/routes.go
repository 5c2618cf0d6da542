package Routes

import (
	"TherapyTrack/Controllers"
	"TherapyTrack/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	api := router.Group("/api")
	{
		// Patient-related routes
		api.GET("/FetchAllPatients", Controllers.FetchAllPatients)
		api.POST("/SearchPatients", Controllers.SearchPatients)
		api.POST("/CreatePatient", Controllers.CreatePatient)
		api.POST("/UpdatePatient", Controllers.UpdatePatient)
		api.POST("/DeletePatient", Controllers.DeletePatient)

		// Order-related routes
		api.POST("/CreateOrder", Controllers.CreateOrder)
		api.POST("/FetchActiveOrders", Controllers.FetchActiveOrders)
		api.POST("/FetchAvailableSessions", Controllers.FetchAvailableSessions)
		api.POST("/DeleteOrder", Controllers.DeleteOrder)

		// Session-related routes
		api.POST("/RecordSession", Controllers.RecordSession)
		api.POST("/DeleteSession", Controllers.DeleteSession)
		api.POST("/HasSessionToday", Controllers.HasSessionToday)
		api.POST("/FetchPatientSessions", Controllers.FetchPatientSessions)

		// Note-related routes
		api.POST("/FetchNotes", Controllers.FetchNotes)
		api.POST("/CreateNote", Controllers.CreateNote)
		api.POST("/DeleteNote", Controllers.DeleteNote)

		// Stats and export routes
		api.GET("/FetchStats", Controllers.FetchStats)
		api.POST("/ExportExcel", Controllers.ExportExcel)
		api.POST("/ExportCSV", Controllers.ExportCSV)
		api.POST("/OpenFolder", Controllers.OpenFolder)

		// SSE (Server-Sent Events) route
		api.GET("/RequestSSE", SSE.RequestSSE)
	}
}
