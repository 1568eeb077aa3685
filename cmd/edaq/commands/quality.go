package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/pipeline"
)

// qualityCmd represents the quality command
var qualityCmd = &cobra.Command{
	Use:   "quality <file.csv|url>",
	Short: "CSV 품질 플래그와 점수",
	Long: `데이터셋의 품질 플래그와 종합 점수를 계산합니다.

Example:
  go run ./cmd/edaq quality data.csv
  go run ./cmd/edaq quality data.csv --min-missing-share 0.2 --json
  go run ./cmd/edaq quality https://example.com/data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runQuality,
}

var (
	qualityMinMissingShare float64
	qualityJSON            bool
)

func init() {
	rootCmd.AddCommand(qualityCmd)

	qualityCmd.Flags().Float64Var(&qualityMinMissingShare, "min-missing-share", 0, "문제 컬럼 결측 비율 임계값 [0, 1] (default from analysis config)")
	qualityCmd.Flags().BoolVar(&qualityJSON, "json", false, "JSON 출력")
}

// qualityReport is the --json output
type qualityReport struct {
	File         string                 `json:"file"`
	NRows        int                    `json:"n_rows"`
	NCols        int                    `json:"n_cols"`
	OKForModel   bool                   `json:"ok_for_model"`
	QualityScore float64                `json:"quality_score"`
	Flags        contracts.QualityFlags `json:"flags"`
}

func runQuality(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(os.Stderr)
	if err != nil {
		return err
	}

	opts := rt.analysis.PipelineOptions(false)
	if cmd.Flags().Changed("min-missing-share") {
		if qualityMinMissingShare < 0 || qualityMinMissingShare > 1 {
			return fmt.Errorf("--min-missing-share must be in [0, 1], got %v", qualityMinMissingShare)
		}
		opts.MinMissingShare = qualityMinMissingShare
	}

	ds, err := readDataset(cmd.Context(), rt, args[0])
	if err != nil {
		return err
	}

	res, err := pipeline.Run(cmd.Context(), ds, opts)
	if err != nil {
		return err
	}

	if qualityJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(qualityReport{
			File:         args[0],
			NRows:        res.Profile.RowCount,
			NCols:        res.Profile.ColumnCount,
			OKForModel:   res.Flags.OKForModel(),
			QualityScore: res.Flags.QualityScore,
			Flags:        res.Flags,
		})
	}

	printQuality(printer{w: cmd.OutOrStdout()}, args[0], res)
	return nil
}

func printQuality(p printer, name string, res *pipeline.Result) {
	f := res.Flags

	p.Header("Data Quality")
	p.KeyValue("File", name, 13)
	p.KeyValue("Rows x Cols", fmt.Sprintf("%d x %d", res.Profile.RowCount, res.Profile.ColumnCount), 13)
	p.KeyValue("Quality score", strconv.FormatFloat(f.QualityScore, 'f', 4, 64), 13)
	p.Separator()

	if f.OKForModel() {
		p.Success("OK for model")
	} else {
		p.Error("Not OK for model")
	}

	p.Section("Flags")
	check := func(on bool, message string) {
		if on {
			p.Warning(message)
		}
	}
	check(f.TooFewRows, "too few rows")
	check(f.TooManyColumns, "too many columns")
	check(f.TooManyMissing, "too many missing values (max share "+formatPct(f.MaxMissingShare)+")")
	check(f.HasConstantColumns, "constant columns: "+formatList(f.ConstantColumns))
	check(f.HasHighCardinalityCategoricals, fmt.Sprintf("high cardinality (> %d): %s", f.HighCardinalityThreshold, formatList(f.HighCardinalityColumns)))
	check(f.ProblematicMissingCount > 0, fmt.Sprintf("missing share > %s: %s", formatPct(f.MinMissingShare), formatList(f.ProblematicMissingCols)))
	check(f.HasSuspiciousIDDuplicates, "duplicated id columns: "+formatList(f.SuspiciousIDColumns))
	if f.HasManyZeroValues {
		items := make([]string, 0, len(f.ZeroValueColumns))
		for _, z := range f.ZeroValueColumns {
			items = append(items, fmt.Sprintf("%s (%s)", z.Column, formatPct(z.ZeroShare)))
		}
		p.Warning("mostly zero columns:")
		p.List(items)
	}

	p.Section("Missing share")
	p.KeyValue("Max", formatPct(f.MaxMissingShare), 9)
	p.KeyValue("Threshold", formatPct(f.MinMissingShare), 9)
	fmt.Fprintln(p.w)
}
