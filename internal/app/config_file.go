package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration schema. Nested sections map
// naturally to the flag names.
type FileConfig struct {
	Input string `yaml:"input"`

	Report struct {
		Markdown string `yaml:"markdown"`
		HTML     string `yaml:"html"`
		PDF      string `yaml:"pdf"`
	} `yaml:"report"`

	Images struct {
		Dir     string `yaml:"dir"`
		Disable bool   `yaml:"disable"`
	} `yaml:"images"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
		Disable bool   `yaml:"disable"`
	} `yaml:"llm"`

	Language    string `yaml:"language"`
	TopN        int    `yaml:"topN"`
	MinTokenLen int    `yaml:"minTokenLen"`
	Verbose     bool   `yaml:"verbose"`
	Quiet       bool   `yaml:"quiet"`
}

// LoadFileConfig reads and parses the YAML config at path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Merge overlays file values onto cfg, filling only fields the flags left at
// their zero value so that flags always win.
func (fc FileConfig) Merge(cfg Config) Config {
	if cfg.InputPath == "" {
		cfg.InputPath = fc.Input
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = fc.Report.Markdown
	}
	if cfg.ReportHTMLPath == "" {
		cfg.ReportHTMLPath = fc.Report.HTML
	}
	if cfg.ReportPDFPath == "" {
		cfg.ReportPDFPath = fc.Report.PDF
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = fc.Images.Dir
	}
	if fc.Images.Disable {
		cfg.NoImages = true
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.LLM.Disable {
		cfg.NoSummary = true
	}
	if cfg.Language == "" {
		cfg.Language = fc.Language
	}
	if cfg.TopN == 0 {
		cfg.TopN = fc.TopN
	}
	if cfg.MinTokenLen == 0 {
		cfg.MinTokenLen = fc.MinTokenLen
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	if fc.Quiet {
		cfg.Quiet = true
	}
	return cfg
}
