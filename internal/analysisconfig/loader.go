// Package analysisconfig loads the analysis defaults (example values, missing
// share threshold, top categories, CSV parsing) from YAML.
package analysisconfig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonny/edaq/internal/dataset"
	"github.com/wonny/edaq/internal/explore"
	"github.com/wonny/edaq/internal/pipeline"
	"github.com/wonny/edaq/internal/quality"
	"github.com/wonny/edaq/internal/summary"
)

// Default returns the built-in defaults used when no file is configured
func Default() *Config {
	return &Config{
		Summary: Summary{ExampleValues: summary.DefaultExampleValues},
		Quality: Quality{MinMissingShare: quality.DefaultMinMissingShare},
		Explore: Explore{MaxColumns: explore.DefaultMaxColumns, TopK: explore.DefaultTopK},
		CSV:     CSV{Delimiter: ","},
	}
}

// Load reads YAML file and returns Config with raw bytes.
// Fields missing from the file keep their Default value.
// SSOT 핵심: KnownFields(true)로 오타/미사용 필드 즉시 실패
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, data, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, data, nil
}

// Parse decodes and validates YAML bytes
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 알 수 없는 필드 발견 시 에러 반환
	// 빈 문서는 기본값
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, _, err := Load(path)
	return cfg, err
}

// Hash generates SHA256 hash from Config (canonical JSON)
// 주의: map 대신 struct 사용으로 해시 재현성 보장
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

// PipelineOptions maps the config onto pipeline options
func (c *Config) PipelineOptions(withExplore bool) pipeline.Options {
	return pipeline.Options{
		MinMissingShare:    c.Quality.MinMissingShare,
		ExampleValues:      c.Summary.ExampleValues,
		Explore:            withExplore,
		MaxCategoryColumns: c.Explore.MaxColumns,
		TopK:               c.Explore.TopK,
	}
}

// ReadOptions maps the CSV section onto dataset read options
func (c *Config) ReadOptions() []dataset.ReadOption {
	opts := []dataset.ReadOption{dataset.WithDelimiter([]rune(c.CSV.Delimiter)[0])}
	if len(c.CSV.NAValues) > 0 {
		opts = append(opts, dataset.WithNAValues(c.CSV.NAValues...))
	}
	if len(c.CSV.Categorical) > 0 {
		opts = append(opts, dataset.WithCategorical(c.CSV.Categorical...))
	}
	return opts
}
