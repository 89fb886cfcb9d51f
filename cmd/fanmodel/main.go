// Package main is the entry point for the hierarchical cube fan.
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

	logger.Info("=== fanmodel ===",
		zap.Float32("frame", cfg.Fan.FrameAngle),
		zap.Float32("blade", cfg.Fan.BladeAngle),
	)

	mode, err := app.NewFanMode(cfg)
	if err != nil {
		logger.Error("failed to build fan", zap.Error(err))
		os.Exit(1)
	}
	appCfg, err := app.AppConfig(cfg, "fanmodel")
	if err != nil {
		logger.Error("bad graphics config", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(appCfg, mode)
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}

	runErr := a.Run()
	if err := a.Close(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("fanmodel error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("fanmodel closed normally")
}
