package main

import (
	"context"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"parc-info/internal/repositories"
	"parc-info/internal/routes"
	"parc-info/migrations"
	"parc-info/pkg/api"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/config"
	"parc-info/pkg/database/postgresql"
	applogger "parc-info/pkg/logger"
	"parc-info/pkg/middleware"
	"parc-info/pkg/service"
	"parc-info/pkg/validation"
	"parc-info/seeders"
)

func main() {
	e := echo.New()
	e.HideBanner = true

	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panique interceptée",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				return api.ErrorResponse(c, apperrors.NewInternalError(apperrors.ErrInternalServer.Error()))
			}
			return err
		},
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Use(middleware.RequestLogger(logger))
	e.Validator = validation.New()

	postgresql.Migrate(cfg.Postgres.DSN, migrations.FS)
	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("connexion à redis impossible", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	userRepo := repositories.NewUserRepository(dbConn, logger)
	if err := seeders.SeedAdmin(context.Background(), userRepo, logger); err != nil {
		logger.Fatal("amorçage du compte administrateur échoué", zap.Error(err))
	}

	tokens := service.NewSessionTokenService(cfg.Session.SecretKey, cfg.Session.TTL, logger)
	routes.InitRouter(e, dbConn, redisClient, tokens, cfg, logger)

	logger.Info("serveur démarré", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("arrêt du serveur", zap.Error(err))
	}
}
