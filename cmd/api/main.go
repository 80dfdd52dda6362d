package main

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"devportal/internal/adapter/api"
	"devportal/internal/adapter/api/handler"
	apimiddleware "devportal/internal/adapter/api/middleware"
	"devportal/internal/adapter/api/router"
	"devportal/internal/adapter/repository"
	"devportal/internal/infrastructure/firebase"
	"devportal/internal/usecase"
	"devportal/pkg/config"
	"devportal/pkg/logger"
)

func main() {
	log := logger.NewWithDefaults()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	} else if cfg.ServiceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatal("Failed to initialize Firebase", zap.Error(err))
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatal("Failed to initialize Firebase Auth", zap.Error(err))
	}

	identity := firebase.NewAuthClient(authClient)

	// A credential failure is not fatal: the catalog client degrades to
	// anonymous access.
	token, err := identity.MintScopedToken(ctx, "dashboard", cfg.TokenTemplate)
	if err != nil {
		log.Warn("Could not mint catalog token, continuing without credential", zap.Error(err))
		token = ""
	}

	catalogClient, err := repository.NewCatalogClient(ctx, cfg.FirebaseProject, token)
	if err != nil {
		log.Fatal("Failed to create catalog client", zap.Error(err))
	}
	defer catalogClient.Close()

	productRepo := repository.NewFirestoreProductRepository(catalogClient, cfg.CatalogCollection)
	dashboard := usecase.NewDashboard(productRepo, log)

	handler.Setup(dashboard)

	// First snapshot loads in the background; the page reports loading
	// until the query settles.
	loadCtx, cancelLoad := context.WithCancel(ctx)
	defer cancelLoad()
	go func() {
		if err := dashboard.Refresh(loadCtx); err != nil {
			log.Warn("Initial product load cancelled", zap.Error(err))
		}
	}()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	log.Info("Starting server", zap.String("port", cfg.ServerPort))
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
