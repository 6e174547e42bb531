package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/config"
	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/logging"
	"github.com/GriffinCanCode/cloudapi/pkg/client"
	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	baseURL := flag.String("url", cfg.Client.BaseURL, "API base URL")
	timeout := flag.Duration("timeout", cfg.Client.Timeout.Std(), "Per-call timeout")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level, Development: true})
	if err != nil {
		logger = logging.NewNop()
	}
	defer logger.Sync()

	opts := []client.Option{client.WithTimeout(*timeout), client.WithLogger(logger.Logger)}
	if cfg.Client.BreakerEnabled {
		opts = append(opts, client.WithBreaker(3, 10*time.Second))
	}

	c, err := client.New(*baseURL, opts...)
	if err != nil {
		logger.Fatal("Invalid client configuration", zap.Error(err))
	}

	if err := run(context.Background(), c, logger); err != nil {
		var ce *client.ConnectivityError
		if errors.As(err, &ce) {
			logger.Error("API unreachable, is the server running?", zap.String("url", c.BaseURL()), zap.Error(err))
		} else {
			logger.Error("Demo failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

// loadConfig reads the environment and rejects malformed or invalid values.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, c *client.Client, logger *logging.Logger) error {
	health, err := c.HealthCheck(ctx)
	if err != nil {
		return err
	}
	logger.Info("health", zap.String("status", health.Status), zap.String("service", health.Service))

	sum, err := c.Add(ctx, 10, 5)
	if err != nil {
		return err
	}
	logger.Info("add", zap.Int64("a", 10), zap.Int64("b", 5), zap.Int64("result", sum))

	product, err := c.Multiply(ctx, 3.5, 2)
	if err != nil {
		return err
	}
	logger.Info("multiply", zap.Float64("result", product))

	pow, err := c.Power(ctx, 2, 10)
	if err != nil {
		return err
	}
	logger.Info("power", zap.Float64("result", pow))

	for _, op := range types.TextOperations {
		res, err := c.ProcessText(ctx, "Hello, World! 123", op)
		if err != nil {
			return err
		}
		logger.Info("process_text", zap.String("operation", string(op)), zap.String("result", res.ProcessedText))
	}

	stats, err := c.CalculateStatistics(ctx, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if err != nil {
		return err
	}
	logger.Info("calculate_statistics",
		zap.Float64("mean", stats.Mean),
		zap.Float64("median", stats.Median),
		zap.Float64("max", stats.Max),
		zap.Float64("min", stats.Min),
		zap.Int("count", stats.Count),
	)

	// Server-side rejection surfaces as a TransportError
	if _, err := c.CalculateStatistics(ctx, nil); err != nil {
		var te *client.TransportError
		if !errors.As(err, &te) {
			return err
		}
		logger.Info("empty statistics rejected", zap.Int("status", te.StatusCode), zap.String("code", te.Code))
	}

	fmt.Println("All operations completed")
	return nil
}
