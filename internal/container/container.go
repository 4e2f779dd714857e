// Package container provides dependency injection for txn-analyzer.
// It centralizes the creation and wiring of the application's components,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/txn-analyzer/internal/analyzer"
	"fjacquet/txn-analyzer/internal/config"
	"fjacquet/txn-analyzer/internal/fileutils"
	"fjacquet/txn-analyzer/internal/loader"
	"fjacquet/txn-analyzer/internal/logging"
	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/report"
	"fjacquet/txn-analyzer/internal/validation"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; dependencies are only reachable through
// the getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	loader    *loader.Loader
	generator *report.Generator
}

// NewContainer creates and wires all application dependencies, logging through a
// logrus adapter configured from cfg.Log.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	c := &Container{
		logger:    logger,
		config:    cfg,
		loader:    loader.NewLoader(logger, cfg.Delimiter(), cfg.Input.MaxConcurrency),
		generator: report.NewGenerator(logger),
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldDelimiter, string(cfg.Delimiter())),
		logging.F(logging.FieldFormat, cfg.Output.Format))
	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLoader returns the record file loader.
func (c *Container) GetLoader() *loader.Loader {
	return c.loader
}

// GetReportGenerator returns the output generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// NewAnalyzer loads inputs, or the configured input files when inputs is empty,
// into a new Analyzer. Records from appends are then added one at a time in file order.
// Directories are replaced by the supported files they contain. When input.validate
// is set, every record is validated before the analyzer is returned.
func (c *Container) NewAnalyzer(ctx context.Context, inputs, appends []string) (*analyzer.Analyzer, error) {
	if len(inputs) == 0 {
		inputs = c.config.Input.Files
	}

	initial, err := c.load(ctx, inputs)
	if err != nil {
		return nil, err
	}
	a := analyzer.NewAnalyzer(initial, c.logger.WithField(logging.FieldComponent, "analyzer"))

	if len(appends) > 0 {
		extra, err := c.load(ctx, appends)
		if err != nil {
			return nil, err
		}
		for _, tx := range extra {
			a.AddTransaction(tx)
		}
	}

	if c.config.Input.Validate {
		if err := validation.ValidateTransactions(a.GetAllTransactions()); err != nil {
			return nil, fmt.Errorf("invalid transactions: %w", err)
		}
	}

	c.logger.Info("Transactions ready for analysis",
		logging.F(logging.FieldCount, a.Len()))
	return a, nil
}

func (c *Container) load(ctx context.Context, paths []string) ([]models.Transaction, error) {
	files, err := fileutils.ExpandPaths(paths, loader.Extensions...)
	if err != nil {
		return nil, err
	}
	return c.loader.LoadFiles(ctx, files)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
