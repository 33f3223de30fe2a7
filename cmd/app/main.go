package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamly/cmd/fx/ai_fx"
	"roamly/cmd/fx/controllers_fx"
	"roamly/cmd/fx/db_fx"
	"roamly/cmd/fx/image_fx"
	"roamly/cmd/fx/itinerary_fx"
	"roamly/cmd/fx/plan_fx"
	"roamly/cmd/fx/recommendation_fx"
	"roamly/cmd/fx/search_fx"
	"roamly/internal/api/controllers"
	"roamly/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		image_fx.Module,
		recommendation_fx.Module,
		itinerary_fx.Module,
		search_fx.Module,
		plan_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	searchController *controllers.SearchController,
	planController *controllers.PlanController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.OptionalIdentityMiddleware())

	RegisterRoutes(r, searchController, planController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	searchController *controllers.SearchController,
	planController *controllers.PlanController) {

	searchGroup := r.Group("/search")
	searchGroup.POST("", searchController.SearchDestinations)
	searchGroup.GET("/:searchId", searchController.GetSearchResult)

	plansGroup := r.Group("/plans")
	plansGroup.POST("", planController.CreatePlan)
	plansGroup.GET("/recent", planController.RecentPlans)
	plansGroup.GET("/:planId", planController.GetPlan)
	plansGroup.POST("/:planId/feedback", planController.RevisePlan)
}
