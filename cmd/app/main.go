package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripgen/cmd/fx/aigc_fx"
	"tripgen/cmd/fx/db_fx"
	"tripgen/cmd/fx/plan_fx"
	"tripgen/internal/api/controllers"
	"tripgen/pkg/middleware"
	"tripgen/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		aigc_fx.Module,
		plan_fx.Module,

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
					port = "5000"
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

func ProvideRouter(planController *controllers.PlanController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController)

	return r
}

func RegisterRoutes(r *gin.Engine, planController *controllers.PlanController) {
	api := r.Group("/api")

	planGroup := api.Group("/plan")
	planGroup.POST("/input", planController.ReceiveDemand)
	planGroup.POST("/generate", planController.GeneratePlan)
	planGroup.POST("/adjust", planController.AdjustPlan)

	api.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"version": "1.0.0"}, "Travel planning service running")
	})
}
