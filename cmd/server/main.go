package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitepulse/internal/config"
	"sitepulse/internal/handler"
	"sitepulse/internal/logging"
	"sitepulse/internal/mq"
	"sitepulse/internal/repository"
	"sitepulse/internal/service"
	"sitepulse/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SitePulse API
// @version 1.0
// @description Visit ingestion and per-site traffic statistics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCloser := logging.Setup(cfg.Server.Mode, &cfg.Log)
	defer logCloser.Close()

	// Initialize repositories
	store, err := repository.Open(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer store.Close()

	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis, cfg.Cache.SiteTTL)
	defer redisRepo.Close()

	// Initialize services
	siteFilter := service.NewSiteFilter(redisRepo.GetClient(), &cfg.Filter)
	siteSvc := service.NewSiteService(store, redisRepo, siteFilter)
	visitSvc := service.NewVisitService(siteSvc, store)
	statsSvc := service.NewStatsService(store, cfg.Stats.Location())

	// Initialize MQ (optional)
	var mqProducer mq.ProducerInterface
	if cfg.RocketMQ.NameServer != "" {
		producer, err := mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, asynchronous ingestion disabled")
		} else {
			mqProducer = producer
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	handler.RegisterRoutes(router,
		handler.NewSiteHandler(siteSvc, statsSvc),
		handler.NewVisitHandler(visitSvc, siteSvc, mqProducer),
	)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start MQ consumer if configured
	if cfg.RocketMQ.NameServer != "" {
		mqConsumer, err := mq.NewConsumer(&cfg.RocketMQ, handler.ConsumeVisit(visitSvc))
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if mqProducer != nil {
		if err := mqProducer.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close RocketMQ producer")
		}
	}

	log.Info().Msg("Server exited")
}
