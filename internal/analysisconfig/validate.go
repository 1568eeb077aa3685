package analysisconfig

import (
	"fmt"
	"unicode/utf8"
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Warning 권장 위반 (경고만)
type Warning struct {
	Code    string
	Message string
}

// Validate checks all required constraints
// 실패 시 error 반환 (프로그램 중단)
func Validate(cfg *Config) error {
	// === Summary ===
	if cfg.Summary.ExampleValues < 0 {
		return ValidationError{"summary.example_values", "must be >= 0"}
	}

	// === Quality ===
	if err := validateShareRange(cfg.Quality.MinMissingShare, "quality.min_missing_share"); err != nil {
		return err
	}

	// === Explore ===
	if cfg.Explore.MaxColumns < 1 {
		return ValidationError{"explore.max_columns", "must be >= 1"}
	}
	if cfg.Explore.TopK < 1 {
		return ValidationError{"explore.top_k", "must be >= 1"}
	}

	// === CSV ===
	if utf8.RuneCountInString(cfg.CSV.Delimiter) != 1 {
		return ValidationError{"csv.delimiter", "must be a single character"}
	}
	switch cfg.CSV.Delimiter {
	case "\"", "\r", "\n", string(utf8.RuneError):
		return ValidationError{"csv.delimiter", fmt.Sprintf("%q is not a valid delimiter", cfg.CSV.Delimiter)}
	}

	return nil
}

// Warn checks recommended constraints (non-fatal)
func Warn(cfg *Config) []Warning {
	var warnings []Warning

	if cfg.Summary.ExampleValues > 20 {
		warnings = append(warnings, Warning{
			Code:    "MANY_EXAMPLES",
			Message: "example_values > 20: 응답 크기 증가",
		})
	}

	if cfg.Quality.MinMissingShare == 0 {
		warnings = append(warnings, Warning{
			Code:    "ZERO_MISSING_SHARE",
			Message: "min_missing_share = 0: 결측이 하나라도 있으면 문제 컬럼",
		})
	}

	if cfg.Explore.TopK > 50 {
		warnings = append(warnings, Warning{
			Code:    "LARGE_TOP_K",
			Message: "top_k > 50: 응답 크기 증가",
		})
	}

	return warnings
}

// validateShareRange는 비율 값이 0~1 범위인지 검증
func validateShareRange(share float64, field string) error {
	if share < 0 || share > 1 {
		return ValidationError{field, "must be in range [0, 1]"}
	}
	return nil
}
