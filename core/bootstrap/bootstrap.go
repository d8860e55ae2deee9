package bootstrap

import (
	"context"
	"fmt"

	coreconfig "github.com/avolkhin/complaintbot/core/config"
	"github.com/avolkhin/complaintbot/core/logger"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config  *coreconfig.Config
	Storage Storage
	Modules Modules

	LoggerInit func(*coreconfig.Config) error
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	Storage  Storage
	Services interface{}
}

// Run initializes the logger, seeds storage, and wires application services.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	for _, seeder := range opts.Modules.Seeders {
		if seeder == nil {
			continue
		}
		if err := seeder.Seed(ctx, opts.Storage); err != nil {
			return nil, fmt.Errorf("bootstrap: seeding failed: %w", err)
		}
	}

	res := &Result{Storage: opts.Storage}
	if opts.Modules.Services != nil {
		services, err := opts.Modules.Services.Provide(ctx, opts.Config, opts.Storage)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: service wiring failed: %w", err)
		}
		res.Services = services
	}

	return res, nil
}
