package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/naming-go/docs"
	"github.com/linskybing/naming-go/handlers"
	"github.com/linskybing/naming-go/middleware"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"github.com/linskybing/naming-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// setup
	r.POST("/auth/register", handlers_instance.User.Register)
	r.POST("/auth/login", handlers_instance.User.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/requests", middleware.Reviewer(), handlers.WatchRequestsHandler(services_instance.Hub))

		users := auth.Group("/users")
		{
			users.GET("", middleware.Admin(), handlers_instance.User.ListUsers)
		}

		configs := auth.Group("/form-configurations")
		{
			configs.GET("/active", handlers_instance.FormConfig.GetActiveFormConfiguration)
			configs.GET("", middleware.Admin(), handlers_instance.FormConfig.ListFormConfigurations)
			configs.GET("/:id", middleware.Admin(), handlers_instance.FormConfig.GetFormConfiguration)
			configs.POST("", middleware.Admin(), handlers_instance.FormConfig.CreateFormConfiguration)
			configs.PUT("/:id", middleware.Admin(), handlers_instance.FormConfig.UpdateFormConfiguration)
			configs.PUT("/:id/activate", middleware.Admin(), handlers_instance.FormConfig.ActivateFormConfiguration)
			configs.DELETE("/:id", middleware.Admin(), handlers_instance.FormConfig.DeleteFormConfiguration)
		}

		requests := auth.Group("/requests")
		{
			requests.POST("", handlers_instance.Request.SubmitRequest)
			requests.GET("", middleware.Reviewer(), handlers_instance.Request.ListRequests)
			requests.GET("/:id", handlers_instance.Request.GetRequest)
			requests.GET("/:id/audit", middleware.Reviewer(), handlers_instance.Request.GetRequestAudit)
			requests.PATCH("/:id/status", middleware.Reviewer(), handlers_instance.Request.TransitionRequest)
			requests.POST("/:id/claim", middleware.RequireRole(models.RoleReviewer), handlers_instance.Request.ClaimRequest)
			requests.DELETE("/:id/claim", middleware.Admin(), handlers_instance.Request.UnclaimRequest)
		}

		approved := auth.Group("/approved-names")
		{
			approved.GET("", handlers_instance.ApprovedName.SearchApprovedNames)
			approved.GET("/facets/:facet", handlers_instance.ApprovedName.ListFacetValues)
		}

		auth.POST("/uploads", handlers.UploadAttachment)
	}
}
