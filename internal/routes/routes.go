package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/autokomis-pl/autokomis-api/internal/cleanup"
	"github.com/autokomis-pl/autokomis-api/internal/config"
	"github.com/autokomis-pl/autokomis-api/internal/handlers"
	"github.com/autokomis-pl/autokomis-api/internal/httperr"
	infraRepo "github.com/autokomis-pl/autokomis-api/internal/infra/repository"
	"github.com/autokomis-pl/autokomis-api/internal/middleware"
	"github.com/autokomis-pl/autokomis-api/internal/upload"
	ucCar "github.com/autokomis-pl/autokomis-api/internal/usecase/car"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.SugaredLogger,
) error {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	store, err := upload.New(cfg.UploadDir, log)
	if err != nil {
		return err
	}
	cleaner := cleanup.NewDispatcher(store, log)

	carRepo := infraRepo.NewCarGormRepository(db)

	// ------------------------------
	// USE CASES — CARS
	// ------------------------------
	listCarsUC := ucCar.NewListCars(carRepo)
	getCarUC := ucCar.NewGetCar(carRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	brandHandler := handlers.NewBrandHandler(db, log)
	carHandler := handlers.NewCarHandler(db, log, store, cleaner, listCarsUC, getCarUC)

	// uploaded images are served as-is
	r.Static("/uploads", store.Dir())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", middleware.Auth(db, cfg), authHandler.Me)

		// ------------------------------
		// BRANDS (mutations need a valid token, no ownership)
		// ------------------------------
		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.List)
			brands.GET("/:id", brandHandler.Get)
			brands.POST("", middleware.Auth(db, cfg), brandHandler.Create)
			brands.PUT("/:id", middleware.Auth(db, cfg), brandHandler.Update)
			brands.DELETE("/:id", middleware.Auth(db, cfg), brandHandler.Delete)
		}

		// ------------------------------
		// CARS
		// ------------------------------
		cars := api.Group("/cars")
		{
			cars.GET("", middleware.OptionalAuth(db, cfg), carHandler.List)
			cars.GET("/:id", carHandler.Get)

			cars.POST("", middleware.Auth(db, cfg), carHandler.Create)

			owned := cars.Group("/:id")
			owned.Use(middleware.Auth(db, cfg), middleware.CarOwner(db))
			{
				owned.PUT("", carHandler.Update)
				owned.PATCH("/status", carHandler.UpdateStatus)
				owned.DELETE("", carHandler.Delete)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.Write(c, http.StatusNotFound,
			fmt.Sprintf("Endpoint %s nie istnieje.", c.Request.URL.Path))
	})

	return nil
}
