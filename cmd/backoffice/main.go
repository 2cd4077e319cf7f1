package main

import (
	"context"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/fleetdesk/backoffice/internal/pkg/config"
	"github.com/fleetdesk/backoffice/internal/pkg/database"
	"github.com/fleetdesk/backoffice/internal/pkg/health"
	"github.com/fleetdesk/backoffice/internal/pkg/logger"
	"github.com/fleetdesk/backoffice/internal/pkg/middleware"
	natspkg "github.com/fleetdesk/backoffice/internal/pkg/nats"
	nrpkg "github.com/fleetdesk/backoffice/internal/pkg/newrelic"
	"github.com/fleetdesk/backoffice/internal/pkg/server"

	awardshandler "github.com/fleetdesk/backoffice/services/awards/handler"
	awardsrepo "github.com/fleetdesk/backoffice/services/awards/repository"
	awardsuc "github.com/fleetdesk/backoffice/services/awards/usecase"
	claimshandler "github.com/fleetdesk/backoffice/services/claims/handler"
	claimsrepo "github.com/fleetdesk/backoffice/services/claims/repository"
	claimsuc "github.com/fleetdesk/backoffice/services/claims/usecase"
	contractshandler "github.com/fleetdesk/backoffice/services/contracts/handler"
	contractsrepo "github.com/fleetdesk/backoffice/services/contracts/repository"
	contractsuc "github.com/fleetdesk/backoffice/services/contracts/usecase"
	feegateway "github.com/fleetdesk/backoffice/services/driverfee/gateway"
	feehandler "github.com/fleetdesk/backoffice/services/driverfee/handler"
	feerepo "github.com/fleetdesk/backoffice/services/driverfee/repository"
	feeuc "github.com/fleetdesk/backoffice/services/driverfee/usecase"
	reportgateway "github.com/fleetdesk/backoffice/services/driverreport/gateway"
	reporthandler "github.com/fleetdesk/backoffice/services/driverreport/handler"
	reportrepo "github.com/fleetdesk/backoffice/services/driverreport/repository"
	reportuc "github.com/fleetdesk/backoffice/services/driverreport/usecase"
	repairshandler "github.com/fleetdesk/backoffice/services/repairs/handler"
	repairsuc "github.com/fleetdesk/backoffice/services/repairs/usecase"
)

const serviceName = "backoffice"

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		logger.Fatal("Failed to initialize logger", logger.Err(err))
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		logger.Info("New Relic APM enabled", logger.String("app", configs.NewRelic.AppName))
	}

	shutdown := server.NewShutdownManager()

	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return pgClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return redisClient.Close() })

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { natsClient.Close(); return nil })

	db := pgClient.GetDB()

	// driver report
	positionRepo := reportrepo.NewPositionRepo(db)
	locationCache := reportrepo.NewLocationCache(redisClient)
	reportGW := reportgateway.NewDriverReportGW(natsClient)
	reportService := reportuc.NewDriverReportService(positionRepo, locationCache, reportGW)

	// driver fee
	transitRepo := feerepo.NewTransitRepo(db)
	driverFeeRepo := feerepo.NewDriverFeeRepo(db)
	feeGW := feegateway.NewFeeGW(natsClient)
	feeService := feeuc.NewFeeService(transitRepo, driverFeeRepo, feeGW)

	// back office
	claimService := claimsuc.NewClaimService(claimsrepo.NewClaimRepo(db))
	attachmentService := contractsuc.NewAttachmentService(contractsrepo.NewAttachmentRepo(db))
	awardsService := awardsuc.NewAwardsService(awardsrepo.NewAccountRepo(db))
	repairService := repairsuc.NewRepairService()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)

	reporthandler.NewHTTPHandler(reportService).RegisterRoutes(e)
	feehandler.NewFeeHandler(feeService).RegisterRoutes(e)
	claimshandler.NewClaimHandler(claimService).RegisterRoutes(e)
	contractshandler.NewAttachmentHandler(attachmentService).RegisterRoutes(e)
	awardshandler.NewAwardsHandler(awardsService).RegisterRoutes(e)
	repairshandler.NewRepairHandler(repairService).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited with error", logger.Err(err))
		shutdown.Shutdown(context.Background())
		os.Exit(1)
	}

	shutdown.Shutdown(context.Background())
}
