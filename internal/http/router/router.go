package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/middleware"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	AdminAPIKey  string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authService := services.Auth()

	authHandler := handler.NewAuthHandler(authService, services.Invitations(), services.Batches(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	invitationHandler := handler.NewInvitationHandler(services.Invitations())
	userHandler := handler.NewUserHandler(services.Users())
	batchHandler := handler.NewBatchHandler(services.Batches())
	companyHandler := handler.NewCompanyHandler(services.Companies())

	v1 := router.Group("/api/v1")
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdmin(authService, cfg.AdminAPIKey))

	InvitationRouter(router.Group("/invites"), admin.Group("/invites"), invitationHandler)

	member := v1.Group("")
	member.Use(middleware.RequireAuth(authService))
	{
		UserRouter(member, admin, userHandler)
		BatchRouter(member.Group("/batches"), admin.Group("/batches"), batchHandler)
		CompanyRouter(member.Group("/companies"), admin.Group("/companies"), companyHandler)
		GroupRouter(member.Group("/groups"), handler.NewGroupHandler(services.Groups()))
		PostRouter(member.Group("/posts"), handler.NewPostHandler(services.Posts()))
		MessageRouter(member, handler.NewMessageHandler(services.Messages()))
		OfficeHourRouter(member.Group("/office-hours"), handler.NewOfficeHourHandler(services.OfficeHours()))
	}

	AdminRouter(admin, handler.NewAdminHandler(services.Admin()))
}
