// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/classdoc"
)

var (
	// ErrReadConfigFile is returned when config file loading fails.
	ErrReadConfigFile = errors.New("read config file")
	// ErrDecodeConfig is returned when config YAML or TOML decoding fails.
	ErrDecodeConfig = errors.New("decode config")
)

// fileConfig is the render configuration stored in a YAML or TOML file.
type fileConfig struct {
	Title        string `yaml:"title" toml:"title"`
	Template     string `yaml:"template" toml:"template"`
	TemplateFile string `yaml:"template_file" toml:"template_file"`
	Trailer      string `yaml:"trailer" toml:"trailer"`
	OmitTrailer  bool   `yaml:"omit_trailer" toml:"omit_trailer"`
	Pretty       bool   `yaml:"pretty" toml:"pretty"`
	HTML         bool   `yaml:"html" toml:"html"`
}

// loadConfig reads a config file; ".toml" files are decoded as TOML,
// everything else as YAML. Relative template paths resolve against the
// config file directory.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrReadConfigFile, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
		}
	}

	if cfg.TemplateFile != "" && !filepath.IsAbs(cfg.TemplateFile) {
		cfg.TemplateFile = filepath.Join(filepath.Dir(path), cfg.TemplateFile)
	}

	return cfg, nil
}

// merge overlays explicitly set flags on top of config values.
func (cfg fileConfig) merge(flags markdownRenderFlags) fileConfig {
	if flags.Title != "" {
		cfg.Title = flags.Title
	}

	if flags.TemplateName != "" {
		cfg.Template = flags.TemplateName
	}

	if flags.TemplatePath != "" {
		cfg.TemplateFile = flags.TemplatePath
	}

	if flags.Trailer != "" {
		cfg.Trailer = flags.Trailer
	}

	cfg.OmitTrailer = cfg.OmitTrailer || flags.NoTrailer
	cfg.Pretty = cfg.Pretty || flags.Pretty
	cfg.HTML = cfg.HTML || flags.HTML
	return cfg
}

// renderOptions converts config to library options, reading the custom template file.
func (cfg fileConfig) renderOptions() (classdoc.Options, error) {
	opt := classdoc.Options{
		Title:        cfg.Title,
		TemplateName: cfg.Template,
		Trailer:      cfg.Trailer,
		OmitTrailer:  cfg.OmitTrailer,
		PrettyPrint:  cfg.Pretty,
	}

	if cfg.TemplateFile != "" {
		customTemplate, err := os.ReadFile(cfg.TemplateFile)
		if err != nil {
			return opt, fmt.Errorf("read template file %q: %w", cfg.TemplateFile, err)
		}

		opt.TemplateText = string(customTemplate)
	}

	return opt, nil
}
