package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-manager-api/internal/api"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/session"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/adreporting"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/leadgen"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/selecting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionStore := session.NewStore(cfg.Session)

	metaClient := metaclient.NewClient(cfg)

	selectorService := selecting.NewService(sessionStore, metaClient)
	campaignService := campaigning.NewService(cfg, sessionStore, metaClient)
	leadService := leadgen.NewService(sessionStore, metaClient)
	adReportService := adreporting.NewService(sessionStore, metaClient)

	server, err := api.New(
		cfg,
		sessionStore,
		selectorService,
		campaignService,
		leadService,
		adReportService,
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
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
