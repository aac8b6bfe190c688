package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/internal/middleware"
)

// RegisterRoutes mounts the API on v1. Everything except health and auth
// requires a bearer token signed with jwtSecret.
func RegisterRoutes(v1 *gin.RouterGroup, h *Handlers, jwtSecret string) {
	v1.GET("/health", h.Health.Index)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", h.User.Me)
			users.PUT("/me", h.User.UpdateMe)
			users.PUT("/me/password", h.User.ChangePassword)
			users.GET("/search", h.User.Search)
		}

		protected.GET("/businesses", h.Business.Index)
		protected.POST("/businesses", h.Business.Create)
		business := protected.Group("/businesses/:business_id")
		{
			business.GET("", h.Business.Show)
			business.PUT("", h.Business.Update)
			business.DELETE("", h.Business.Delete)
			business.GET("/members", h.Business.Members)
			business.POST("/members/:user_id", h.Business.AddMember)
			business.DELETE("/members/:user_id", h.Business.RemoveMember)
			business.GET("/audits", h.Business.Audits)
			business.GET("/balance", h.Business.Balance)
			business.GET("/clients", h.Client.Index)
			business.POST("/clients", h.Client.Create)
			business.GET("/transactions", h.Transaction.Index)
			business.POST("/transactions", h.Transaction.Create)
			business.GET("/debts", h.Debt.Index)
			business.GET("/debts/summary", h.Debt.Summary)
		}

		clients := protected.Group("/clients/:client_id")
		{
			clients.GET("", h.Client.Show)
			clients.PUT("", h.Client.Update)
			clients.DELETE("", h.Client.Delete)
			clients.GET("/debts", h.Client.Debts)
		}

		transactions := protected.Group("/transactions/:transaction_id")
		{
			transactions.GET("", h.Transaction.Show)
			transactions.PUT("", h.Transaction.Update)
			transactions.DELETE("", h.Transaction.Delete)
		}

		protected.POST("/debts", h.Debt.Create)
		debts := protected.Group("/debts/:debt_id")
		{
			debts.GET("", h.Debt.Show)
			debts.PUT("", h.Debt.Update)
			debts.DELETE("", h.Debt.Delete)
			debts.GET("/installments", h.Debt.Installments)
			debts.POST("/installments", h.Debt.ApplyInstallment)
		}

		protected.GET("/notifications", h.Notification.Index)
		protected.PUT("/notifications/:notification_id/read", h.Notification.MarkAsRead)

		protected.GET("/jobs/status", h.Job.Status)
	}
}
