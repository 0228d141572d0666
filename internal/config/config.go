// Package config loads and validates the pipeline configuration.
//
// It supplies defaults for the landing/standard/docs directory layout and
// the enrichment endpoint, reads an optional YAML file, and exposes the
// explicit EnsureDirs bootstrap step commands invoke before touching the
// filesystem. Obtain settings through this package so paths are resolved in
// one place.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Paths contains the directory layout of the data zones.
type Paths struct {
	// LandingDir holds raw source inputs, untouched by the pipeline.
	LandingDir string `yaml:"landing_dir"`
	// StandardDir holds the canonical parquet outputs.
	StandardDir string `yaml:"standard_dir"`
	// DocsDir holds schema documentation and quality metrics.
	DocsDir string `yaml:"docs_dir"`
}

// Enrich contains the Google Books enrichment settings.
type Enrich struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	DelayMillis    int    `yaml:"delay_millis"`
}

// Config is the full pipeline configuration.
type Config struct {
	Paths  Paths  `yaml:"paths"`
	Enrich Enrich `yaml:"enrich"`
}

// Default returns the repository-default configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		Paths: Paths{
			LandingDir:  filepath.Join(dir, "landing"),
			StandardDir: filepath.Join(dir, "standard"),
			DocsDir:     filepath.Join(dir, "docs"),
		},
		Enrich: Enrich{
			Endpoint:       "https://www.googleapis.com/books/v1/volumes",
			TimeoutSeconds: 20,
			DelayMillis:    250,
		},
	}
}

// Load reads the YAML configuration at path, layered over Default(root).
// A missing file is not an error; the defaults apply as-is.
func Load(path, root string) (Config, error) {
	cfg := Default(root)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Paths.LandingDir == "" || c.Paths.StandardDir == "" || c.Paths.DocsDir == "" {
		return errors.New("config: landing_dir, standard_dir and docs_dir must all be set")
	}
	if c.Enrich.Endpoint == "" {
		return errors.New("config: enrich endpoint must be set")
	}
	if c.Enrich.TimeoutSeconds <= 0 {
		return errors.New("config: enrich timeout must be positive")
	}
	return nil
}

// EnsureDirs creates the data-zone directories. This is the pipeline's only
// filesystem bootstrapping and runs once per command invocation.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.Paths.LandingDir, c.Paths.StandardDir, c.Paths.DocsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Landing artifact names fixed by the upstream ETL contract.
const (
	GoodreadsFile   = "goodreads_books.json"
	GoogleBooksFile = "googlebooks_books.csv"
)

// Standard and docs artifact names.
const (
	DimBookFile        = "dim_book.parquet"
	SourceDetailFile   = "book_source_detail.parquet"
	SchemaDocFile      = "schema.md"
	QualityMetricsFile = "quality_metrics.json"
)

// GoodreadsPath returns the landing path of the Goodreads scrape.
func (c Config) GoodreadsPath() string {
	return filepath.Join(c.Paths.LandingDir, GoodreadsFile)
}

// GoogleBooksPath returns the landing path of the enrichment CSV.
func (c Config) GoogleBooksPath() string {
	return filepath.Join(c.Paths.LandingDir, GoogleBooksFile)
}

// DimBookPath returns the standard path of the canonical table.
func (c Config) DimBookPath() string {
	return filepath.Join(c.Paths.StandardDir, DimBookFile)
}

// SourceDetailPath returns the standard path of the provenance table.
func (c Config) SourceDetailPath() string {
	return filepath.Join(c.Paths.StandardDir, SourceDetailFile)
}

// SchemaDocPath returns the docs path of the schema markdown.
func (c Config) SchemaDocPath() string {
	return filepath.Join(c.Paths.DocsDir, SchemaDocFile)
}

// QualityMetricsPath returns the docs path of the metrics JSON.
func (c Config) QualityMetricsPath() string {
	return filepath.Join(c.Paths.DocsDir, QualityMetricsFile)
}
