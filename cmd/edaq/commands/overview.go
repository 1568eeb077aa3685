package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/pipeline"
)

// overviewCmd represents the overview command
var overviewCmd = &cobra.Command{
	Use:   "overview <file.csv|url>",
	Short: "CSV 컬럼 요약",
	Long: `데이터셋의 컬럼별 요약, 결측 테이블, 빈도 상위 범주를 출력합니다.

Example:
  go run ./cmd/edaq overview data.csv
  go run ./cmd/edaq overview data.csv --example-values 5 --top-k 3`,
	Args: cobra.ExactArgs(1),
	RunE: runOverview,
}

var (
	overviewExampleValues int
	overviewTopK          int
	overviewMaxColumns    int
)

func init() {
	rootCmd.AddCommand(overviewCmd)

	overviewCmd.Flags().IntVar(&overviewExampleValues, "example-values", 0, "컬럼당 예시 값 개수 (default from analysis config)")
	overviewCmd.Flags().IntVar(&overviewTopK, "top-k", 0, "범주 컬럼당 상위 값 개수 (default from analysis config)")
	overviewCmd.Flags().IntVar(&overviewMaxColumns, "max-columns", 0, "상위 범주를 보여줄 최대 컬럼 수 (default from analysis config)")
}

func runOverview(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(os.Stderr)
	if err != nil {
		return err
	}

	ds, err := readDataset(cmd.Context(), rt, args[0])
	if err != nil {
		return err
	}

	opts := rt.analysis.PipelineOptions(true)
	if cmd.Flags().Changed("example-values") {
		opts.ExampleValues = overviewExampleValues
		if opts.ExampleValues == 0 {
			opts.ExampleValues = -1 // 0 = 예시 없음
		}
	}
	if cmd.Flags().Changed("top-k") {
		opts.TopK = overviewTopK
	}
	if cmd.Flags().Changed("max-columns") {
		opts.MaxCategoryColumns = overviewMaxColumns
	}

	res, err := pipeline.Run(cmd.Context(), ds, opts)
	if err != nil {
		return err
	}

	printOverview(printer{w: cmd.OutOrStdout()}, args[0], res)
	return nil
}

func printOverview(p printer, name string, res *pipeline.Result) {
	p.Header("Dataset Overview")
	p.KeyValue("File", name, 7)
	p.KeyValue("Rows", humanize.Comma(int64(res.Profile.RowCount)), 7)
	p.KeyValue("Columns", strconv.Itoa(res.Profile.ColumnCount), 7)

	p.Section("Columns")
	rows := make([][]string, 0, len(res.Profile.Columns))
	for _, c := range res.Profile.Columns {
		rows = append(rows, []string{
			c.Name,
			c.Dtype,
			strconv.Itoa(c.NonNullCount),
			strconv.Itoa(c.MissingCount),
			formatPct(c.MissingShare),
			strconv.Itoa(c.UniqueCount),
			formatOptional(c.Min),
			formatOptional(c.Max),
			formatOptional(c.Mean),
			formatOptional(c.Std),
			formatList(c.ExampleValues),
		})
	}
	p.Table([]string{"name", "dtype", "non_null", "missing", "missing%", "unique", "min", "max", "mean", "std", "examples"}, rows)

	p.Section("Missing values")
	if res.Missing.Len() == 0 {
		p.Info("No columns")
	} else {
		rows = rows[:0]
		for _, r := range res.Missing.Rows {
			rows = append(rows, []string{r.Column, strconv.Itoa(r.MissingCount), formatPct(r.MissingShare)})
		}
		p.Table([]string{"column", "missing", "share"}, rows)
	}

	p.Section("Top categories")
	if len(res.TopCategories) == 0 {
		p.Info("No categorical columns")
	}
	for _, table := range res.TopCategories {
		printCategories(p, table)
	}

	if res.Correlation != nil && len(res.Correlation.Columns) > 1 {
		p.Section("Correlation")
		printCorrelation(p, res.Correlation)
	}
	fmt.Fprintln(p.w)
}

func printCategories(p printer, table contracts.CategoryTable) {
	fmt.Fprintf(p.w, "  %s\n", table.Column)
	rows := make([][]string, 0, len(table.Values))
	for _, v := range table.Values {
		rows = append(rows, []string{v.Value, strconv.Itoa(v.Count), formatPct(v.Share)})
	}
	p.Table([]string{"value", "count", "share"}, rows)
}

func printCorrelation(p printer, m *contracts.CorrelationMatrix) {
	header := append([]string{""}, m.Columns...)
	rows := make([][]string, len(m.Columns))
	for i, name := range m.Columns {
		row := []string{name}
		for _, v := range m.Values[i] {
			if v == nil {
				row = append(row, "-")
				continue
			}
			row = append(row, strconv.FormatFloat(*v, 'f', 3, 64))
		}
		rows[i] = row
	}
	p.Table(header, rows)
}
