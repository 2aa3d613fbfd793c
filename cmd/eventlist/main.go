package main

import (
	"context"
	"eventlist-backend/cmd/eventlist/apis"
	"eventlist-backend/cmd/eventlist/metrics"
	"eventlist-backend/cmd/eventlist/model"
	"eventlist-backend/cmd/eventlist/repository"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EnvCfg struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	HTTPPort   int    `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	// .env is optional, deployments set the environment directly
	_ = godotenv.Load()

	var cfg EnvCfg
	err = envconfig.Process("EVENTLIST", &cfg)
	if err != nil {
		log.Fatalf("unable to read environment config: %v", err)
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	db, err := gorm.Open(
		postgres.Open(
			fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBName,
			),
		),
	)

	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}

	err = db.AutoMigrate(&model.Event{}, &model.Player{})
	if err != nil {
		log.Fatalf("unable to migrate schema: %v", err)
	}

	metrics.Init()

	e := echo.New()
	e.HideBanner = true
	e.Validator = apis.NewFormValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	}))
	e.Use(metrics.Middleware())
	e.Use(apis.RequestLogger())
	e.Use(middleware.Recover())

	rootg := e.Group("")
	apig := rootg.Group("/api")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	rootg.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	eventRepo := repository.NewEventRepo(db)

	apis.
		NewEventAPI(eventRepo).
		Setup(apig)

	playerRepo := repository.NewPlayerRepo(db)

	apis.
		NewPlayerAPI(playerRepo).
		Setup(apig)

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.HTTPPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server stopped unexpectedly: %v", err)
		}
	}()
	log.Infof("eventlist service running at port %d", cfg.HTTPPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("eventlist service shutdown failed: %v", err)
	}
	log.Infof("eventlist service gracefully stopped")
}
