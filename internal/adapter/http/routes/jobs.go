package routes

import (
	"net/http"

	"tradeportal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs          = "/jobs"
	PathQuotes        = "/quote-templates"
	PathReviews       = "/reviews"
	PathPayments      = "/payments"
	PathNotifications = "/notifications"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.PaymentHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListOpenJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PUT("/:job_id", jobHandler.UpdateJob)
		jobs.DELETE("/:job_id", jobHandler.DeleteJob)
		jobs.POST("/:job_id/accept-quote", jobHandler.AcceptQuote)
		jobs.POST("/:job_id/complete", jobHandler.CompleteJob)
		jobs.POST("/:job_id/cancel", jobHandler.CancelJob)

		jobs.POST("/:job_id/quotes", quoteHandler.CreateQuote)
		jobs.GET("/:job_id/quotes", quoteHandler.ListQuotesByJob)

		jobs.POST("/:job_id/capture", paymentHandler.CapturePayment)
	}
}

func addQuoteTemplateRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	templates := rg.Group(PathQuotes)
	{
		templates.POST("", quoteHandler.CreateTemplate)
		templates.GET("", quoteHandler.ListTemplates)
		templates.PUT("/:template_id", quoteHandler.UpdateTemplate)
		templates.DELETE("/:template_id", quoteHandler.DeleteTemplate)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/events", paymentHandler.RecordProcessorEvent)
	}
}

func addReviewRoutes(rg *gin.RouterGroup, reviewHandler *handlers.ReviewHandler) {
	reviews := rg.Group(PathReviews)
	{
		reviews.POST("", reviewHandler.CreateReview)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListMine)
		notifications.POST("/:notification_id/read", notificationHandler.MarkRead)
	}
}
