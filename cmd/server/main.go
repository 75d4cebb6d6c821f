package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tkoval/catalog-service/internal/app/catalog/queries"
	"github.com/tkoval/catalog-service/internal/app/catalog/repo"
	"github.com/tkoval/catalog-service/internal/app/catalog/service"
	"github.com/tkoval/catalog-service/internal/config"
	"github.com/tkoval/catalog-service/internal/pkg/clock"
	"github.com/tkoval/catalog-service/internal/pkg/committer"
	"github.com/tkoval/catalog-service/internal/pkg/idgen"
	httpcatalog "github.com/tkoval/catalog-service/internal/transport/http/catalog"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		logger.Fatalf("spanner.NewClient: %v", err)
	}
	defer client.Close()

	ids, err := idgen.New(cfg.NodeID)
	if err != nil {
		logger.Fatalf("id generator: %v", err)
	}

	clk := clock.RealClock{}
	cm := committer.NewAdapter(client)
	outboxRepo := repo.NewOutboxRepo()

	products := service.NewProductService(
		queries.NewProductReader(client), repo.NewProductRepo(), outboxRepo, cm, ids, clk)
	categories := service.NewCategoryService(
		queries.NewCategoryReader(client), repo.NewCategoryRepo(), outboxRepo, cm, ids, clk)

	engine := gin.New()
	engine.Use(gin.Recovery(), httpcatalog.RequestLogger(logger))

	h := httpcatalog.NewHandler(products, categories, logger)
	h.RegisterRoutes(engine, httpcatalog.RequireAdmin([]byte(cfg.JWTSecret), logger))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("http serve: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}

	logger.Info("server stopped")
}
