package routes

import (
	"rockstar_services/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathInvoices = "/invoices"
	PathUsers    = "/users"
	PathCatalogs = "/catalogs"
)

func addWizardRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.PUT("/:id/steps/:step", sessionHandler.UpdateStep)
		sessions.POST("/:id/next", sessionHandler.Next)
		sessions.POST("/:id/prev", sessionHandler.Prev)
		sessions.POST("/:id/jump", sessionHandler.Jump)
		sessions.POST("/:id/submit", sessionHandler.Submit)
		sessions.POST("/:id/reset", sessionHandler.Reset)
		sessions.GET("/:id/review", sessionHandler.Review)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET(PathInvoices, dashboardHandler.ListInvoices)
	rg.GET(PathUsers, dashboardHandler.ListUsers)
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalogs, catalogHandler.GetCatalogs)
}
