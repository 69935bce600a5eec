package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/cogedon-server/internal/api/http/context"
	"github.com/dtroode/cogedon-server/internal/api/http/router"
	httpServer "github.com/dtroode/cogedon-server/internal/api/http/server"
	"github.com/dtroode/cogedon-server/internal/config"
	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
	"github.com/dtroode/cogedon-server/internal/repository/postgres"
	"github.com/dtroode/cogedon-server/internal/server"
	"github.com/dtroode/cogedon-server/internal/service"
	storage "github.com/dtroode/cogedon-server/internal/storage/minio"
	"github.com/dtroode/cogedon-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.ConnectTimeout)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	tokenManager := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	credentialService := service.NewCredentials(userRepo, cfg.Auth.BcryptCost, logger)
	sessionService := service.NewSessions(sessionRepo, tokenManager, logger)
	authService := service.NewAuth(credentialService, sessionService, userRepo, logger)
	reportService := service.NewReports(reportRepo, sessionService, storageClient, logger, service.ReportsConfig{
		Country:      cfg.Report.Country,
		RequireToken: cfg.Session.RequireToken,
		HeatmapLevel: cfg.Heatmap.Level,
	})
	if !cfg.Session.RequireToken {
		logger.Warn("reports without a session token are attributed to the most recent login")
	}

	r := router.New(authService, reportService, sessionService, db, httpctx.NewManager(), logger, router.Options{
		StaticDir:      cfg.HTTP.StaticDir,
		MaxUploadBytes: cfg.HTTP.MaxUploadMiB << 20,
	})
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout)

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
