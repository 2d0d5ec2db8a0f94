package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/imagecache"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/restaurant-admin-api/internal/api"
	"github.com/vfg2006/restaurant-admin-api/internal/config"
	"github.com/vfg2006/restaurant-admin-api/internal/events"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/catalog"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	posClient := posclient.NewClient(cfg)
	posIntegrator := pos.New(cfg, posClient)

	images, err := imagecache.New(cfg.Images.CacheDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cache de imagens")
	}

	bus := events.NewBus()

	authenticator := authenticating.NewService(posClient, cfg)
	categoryService := catalog.NewCategoryService(posClient, bus)
	productService := catalog.NewProductService(posClient, images, bus)
	reportService := reporting.NewService(posIntegrator)
	optionsService := reporting.NewOptionsService(posClient, bus)

	server, err := api.New(
		cfg,
		authenticator,
		categoryService,
		productService,
		reportService,
		optionsService,
		images,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
