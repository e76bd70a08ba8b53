package cmd

import (
	"fmt"

	"github.com/eadegbola/profiler/internal/config"
	"github.com/eadegbola/profiler/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `profiler init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newRenderer loads the config and builds the page renderer.
func newRenderer() (*config.Config, *site.Renderer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	r, err := site.NewRenderer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("building renderer: %w", err)
	}
	return cfg, r, nil
}
