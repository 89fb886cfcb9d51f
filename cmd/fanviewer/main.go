// Package main is the entry point for the OBJ fan viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/fanview/internal/app"
	"github.com/Faultbox/fanview/internal/config"
	"github.com/Faultbox/fanview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitWithFileConfig(cfg.Logging.Level, cfg.Logging.FileConfig(), true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== fanview ===", zap.String("mesh", cfg.Mesh.Source))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) (err error) {
	mode, err := app.NewViewerMode(cfg)
	if err != nil {
		return err
	}
	appCfg, err := app.AppConfig(cfg, "fanview")
	if err != nil {
		return err
	}

	a, err := app.New(appCfg, mode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return a.Run()
}
