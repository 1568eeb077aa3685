package analysisconfig

// Config는 분석 기본값 전체 설정
type Config struct {
	Summary Summary `yaml:"summary" json:"summary"`
	Quality Quality `yaml:"quality" json:"quality"`
	Explore Explore `yaml:"explore" json:"explore"`
	CSV     CSV     `yaml:"csv" json:"csv"`
}

// Summary 컬럼 요약
type Summary struct {
	ExampleValues int `yaml:"example_values" json:"example_values"`
}

// Quality 품질 플래그
type Quality struct {
	MinMissingShare float64 `yaml:"min_missing_share" json:"min_missing_share"`
}

// Explore top categories
type Explore struct {
	MaxColumns int `yaml:"max_columns" json:"max_columns"`
	TopK       int `yaml:"top_k" json:"top_k"`
}

// CSV 업로드 파싱
type CSV struct {
	Delimiter   string   `yaml:"delimiter" json:"delimiter"` // 한 글자
	NAValues    []string `yaml:"na_values" json:"na_values"` // 비어 있으면 기본값
	Categorical []string `yaml:"categorical" json:"categorical"`
}
