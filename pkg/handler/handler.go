package handler

import (
	"ultrapanel_admin_back/pkg/middleware"
	"ultrapanel_admin_back/pkg/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) InitRoute() *gin.Engine {
	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://ultrapanel.shop"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := router.Group("/api/admin", middleware.AuthMiddleware())
	{
		credentials := api.Group("/credentials")
		{
			credentials.GET("/", h.GetCredentials)
			credentials.POST("/refresh", h.RefreshCredentials)
			credentials.PUT("/", h.UpdateCredentials)
			credentials.POST("/editor", h.OpenCredentialsEditor)
			credentials.PATCH("/editor", h.EditCredentialsField)
			credentials.DELETE("/editor", h.CloseCredentialsEditor)
			credentials.POST("/copy", h.CopyCredentialsField)
			credentials.POST("/visibility", h.ToggleCredentialsVisibility)
		}

		withdrawals := api.Group("/withdrawals")
		{
			withdrawals.GET("/", h.GetWithdrawals)
			withdrawals.GET("/:id", h.GetWithdrawalDetails)
			withdrawals.POST("/:id/approve", h.ApproveWithdrawal)
			withdrawals.POST("/:id/reject", h.RejectWithdrawal)
		}

		api.GET("/audit", h.GetAuditHistory)
	}
	return router
}
