package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"royalnano/cmd/fx/admin_fx"
	"royalnano/cmd/fx/captcha_fx"
	"royalnano/cmd/fx/contact_fx"
	"royalnano/cmd/fx/db_fx"
	"royalnano/cmd/fx/memcache_fx"
	"royalnano/cmd/fx/moderation_fx"
	"royalnano/cmd/fx/review_fx"
	"royalnano/internal/api/controllers"
	"royalnano/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		captcha_fx.Module,
		review_fx.Module,
		moderation_fx.Module,
		admin_fx.Module,
		contact_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	reviewController *controllers.ReviewController,
	adminReviewController *controllers.AdminReviewController,
	adminController *controllers.AdminController,
	contactController *controllers.ContactController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, reviewController, adminReviewController, adminController, contactController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	reviewController *controllers.ReviewController,
	adminReviewController *controllers.AdminReviewController,
	adminController *controllers.AdminController,
	contactController *controllers.ContactController) {

	r.GET("/reviews", reviewController.ListReviews)
	r.POST("/reviews", reviewController.SubmitReview)
	r.POST("/contact", contactController.SubmitContact)

	adminGroup := r.Group("/admin")
	adminGroup.POST("/login", adminController.Login)

	authed := adminGroup.Group("", middleware.JWTAuthMiddleware())
	authed.GET("/dashboard", adminController.Dashboard)
	authed.GET("/reviews", adminReviewController.ListReviews)
	authed.PATCH("/reviews/bulk", adminReviewController.BulkAction)
	authed.PATCH("/reviews/:id/status", adminReviewController.UpdateStatus)
	authed.DELETE("/reviews/:id", adminReviewController.DeleteReview)
	authed.GET("/contacts", contactController.ListContacts)
}
