package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/handlers"
	"github.com/hrsuite/recruit-go/middleware"
	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/services"
	"github.com/hrsuite/recruit-go/websocket"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	hub := websocket.NewHub()
	services_instance := services.New(repos_instance, hub)
	handlers_instance := handlers.New(services_instance, hub)

	r.Use(middleware.CORS())

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		applications := auth.Group("/applications")
		{
			applications.POST("", handlers_instance.Application.Create)
			applications.GET("", handlers_instance.Application.List)
			applications.GET("/:id", handlers_instance.Application.Get)
			applications.PUT("/:id/status", middleware.Staff(), handlers_instance.Application.Advance)
			applications.PUT("/:id/interview", middleware.Staff(), handlers_instance.Application.ScheduleInterview)
			applications.POST("/batch-interview", middleware.Staff(), handlers_instance.Application.ScheduleBatch)
			applications.POST("/:id/offer", middleware.Staff(), handlers_instance.Application.SendOffer)

			applications.GET("/:id/requirements", handlers_instance.Document.ListRequirements)
			applications.POST("/:id/complete-documents", middleware.Staff(), handlers_instance.Completion.CompleteDocumentStage)
			applications.GET("/:id/benefits", handlers_instance.Completion.GetBenefits)
			applications.PUT("/:id/benefits", handlers_instance.Completion.SaveBenefits)
			applications.PUT("/:id/profile-entry", handlers_instance.Completion.SaveProfileEntry)
			applications.GET("/:id/follow-ups", handlers_instance.FollowUp.ListByApplication)
		}

		requirements := auth.Group("/requirements")
		{
			requirements.POST("", middleware.Staff(), handlers_instance.Document.CreateRequirement)
			requirements.DELETE("/:id", middleware.Staff(), handlers_instance.Document.DeleteRequirement)
			requirements.POST("/:id/submissions", handlers_instance.Document.Submit)
		}

		submissions := auth.Group("/submissions")
		{
			submissions.PUT("/:id/review", middleware.Staff(), handlers_instance.Document.Review)
		}

		followUps := auth.Group("/follow-ups")
		{
			followUps.POST("", handlers_instance.FollowUp.Create)
			followUps.PUT("/:id/respond", middleware.Staff(), handlers_instance.FollowUp.Respond)
		}

		events := auth.Group("/events")
		{
			events.GET("/recent", middleware.Staff(), handlers_instance.Event.Recent)
		}
		auth.GET("/ws/events", middleware.Staff(), handlers_instance.Event.Stream)
	}
}
