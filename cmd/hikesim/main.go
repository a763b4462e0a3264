// Package main is the entry point for the hiking simulator.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/hikesim/internal/app"
	"github.com/Faultbox/hikesim/internal/assets"
	"github.com/Faultbox/hikesim/internal/config"
	"github.com/Faultbox/hikesim/internal/engine/shader"
	"github.com/Faultbox/hikesim/internal/engine/window"
	"github.com/Faultbox/hikesim/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("hiking simulator failed", errorFields(err)...)
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("hiking simulator closed normally")
	logger.Sync()
}

// run keeps deferred cleanup ahead of os.Exit.
func run(cfg *config.Config) error {
	logger.Info("=== Hiking Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run()
}

// errorFields adds the structured details of the startup error types.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var assetErr *assets.AssetLoadError
	var initErr *window.InitializationError
	var compileErr *shader.ShaderCompileError
	var linkErr *shader.ShaderLinkError

	switch {
	case errors.As(err, &assetErr):
		fields = append(fields,
			zap.String("kind", "asset"),
			zap.String("asset", assetErr.Asset),
			zap.String("path", assetErr.Path),
		)
	case errors.As(err, &initErr):
		fields = append(fields,
			zap.String("kind", "initialization"),
			zap.String("component", initErr.Component),
		)
	case errors.As(err, &compileErr):
		fields = append(fields,
			zap.String("kind", "shader compile"),
			zap.String("stage", compileErr.Stage),
		)
	case errors.As(err, &linkErr):
		fields = append(fields, zap.String("kind", "shader link"))
	}
	return fields
}
