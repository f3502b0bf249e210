// Package common wires the pipeline, extractor and store from configuration
// for the CLI commands.
package common

import (
	"context"

	"github.com/almasriprojects/BankAPI/internal/categorizer"
	"github.com/almasriprojects/BankAPI/internal/config"
	"github.com/almasriprojects/BankAPI/internal/extractor"
	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/pipeline"
	"github.com/almasriprojects/BankAPI/internal/store"
)

// BuildPipeline assembles a Pipeline from configuration, attaching the
// optional YAML rule table and the Gemini refiner when enabled. The returned
// cleanup function releases the refiner's client and is safe to call always.
func BuildPipeline(ctx context.Context, cfg *config.Config, logger logging.Logger) (*pipeline.Pipeline, func(), error) {
	var opts []pipeline.Option
	cleanup := func() {}

	if cfg.Categories.File != "" {
		rules, err := categorizer.LoadRules(cfg.Categories.File)
		if err != nil {
			return nil, cleanup, err
		}
		opts = append(opts, pipeline.WithCategorizer(categorizer.NewWithRules(rules, logger)))
		logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: cfg.Categories.File},
			logging.Field{Key: logging.FieldCount, Value: len(rules)},
		).Info("Loaded category rules")
	}

	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		refiner, err := categorizer.NewGeminiRefiner(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			logger.WithError(err).Warn("Gemini refiner unavailable, continuing without it")
		} else {
			opts = append(opts, pipeline.WithRefiner(refiner))
			cleanup = func() { refiner.Close() }
		}
	}

	return pipeline.New(cfg, logger, opts...), cleanup, nil
}

// BuildExtractor assembles the PDF text extractor from configuration.
func BuildExtractor(cfg *config.Config, logger logging.Logger) *extractor.Extractor {
	return extractor.New(
		&extractor.PdftoppmRasterizer{BinaryPath: cfg.OCR.PdftoppmPath, DPI: cfg.OCR.DPI},
		&extractor.TesseractEngine{BinaryPath: cfg.OCR.TesseractPath},
		logger,
	)
}

// BuildStore creates the statement store rooted at the configured output
// directory.
func BuildStore(cfg *config.Config, logger logging.Logger) *store.Store {
	return store.New(cfg.Output.Directory, logger)
}
