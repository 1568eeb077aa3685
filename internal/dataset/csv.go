package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrMalformedCSV wraps every parse failure returned by ReadCSV
var ErrMalformedCSV = errors.New("malformed csv")

// DefaultNAValues are the cell spellings treated as the missing marker
var DefaultNAValues = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "None", "<NA>"}

type readOptions struct {
	delimiter   rune
	naValues    []string
	categorical map[string]struct{}
}

// ReadOption configures ReadCSV
type ReadOption func(*readOptions)

// WithDelimiter sets the field separator (default ',')
func WithDelimiter(r rune) ReadOption {
	return func(o *readOptions) {
		o.delimiter = r
	}
}

// WithNAValues replaces DefaultNAValues
func WithNAValues(values ...string) ReadOption {
	return func(o *readOptions) {
		o.naValues = values
	}
}

// WithCategorical marks text columns that should be typed as categorical
func WithCategorical(names ...string) ReadOption {
	return func(o *readOptions) {
		for _, n := range names {
			o.categorical[n] = struct{}{}
		}
	}
}

// ReadCSV parses a CSV stream with a header row into a Dataset.
// Column kinds are detected by gota: integers, floats and booleans keep their
// kind, everything else becomes text. A header without records yields a
// dataset with zero rows.
func ReadCSV(r io.Reader, opts ...ReadOption) (*Dataset, error) {
	o := readOptions{
		delimiter:   ',',
		naValues:    DefaultNAValues,
		categorical: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.delimiter

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedCSV)
	}

	header := records[0]
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformedCSV, name)
		}
		seen[name] = struct{}{}
	}

	if len(records) == 1 {
		columns := make([]Column, len(header))
		for i, name := range header {
			columns[i] = Column{Name: name, Kind: o.labelKind(name)}
		}
		return New(columns...)
	}

	normalizeBooleans(records, o.naValues)

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(o.naValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, df.Err)
	}

	return FromDataFrame(df, o.labelKind)
}

// boolSpellings are the boolean literals read as booleans. gota only
// detects the lowercase form.
var boolSpellings = map[string]string{
	"true": "true", "True": "true", "TRUE": "true",
	"false": "false", "False": "false", "FALSE": "false",
}

// normalizeBooleans lowercases a column's values in place when every
// non-missing value is a boolean spelling
func normalizeBooleans(records [][]string, naValues []string) {
	na := make(map[string]struct{}, len(naValues))
	for _, v := range naValues {
		na[v] = struct{}{}
	}

	for col := range records[0] {
		seen := false
		for _, row := range records[1:] {
			v := row[col]
			if _, ok := na[v]; ok {
				continue
			}
			if _, ok := boolSpellings[v]; !ok {
				seen = false
				break
			}
			seen = true
		}
		if !seen {
			continue
		}

		for _, row := range records[1:] {
			if b, ok := boolSpellings[row[col]]; ok {
				row[col] = b
			}
		}
	}
}

func (o readOptions) labelKind(name string) Kind {
	if _, ok := o.categorical[name]; ok {
		return KindCategorical
	}
	return KindText
}

// FromDataFrame converts a gota DataFrame. labelKind picks the kind of string
// columns; nil means text.
func FromDataFrame(df dataframe.DataFrame, labelKind func(name string) Kind) (*Dataset, error) {
	if labelKind == nil {
		labelKind = func(string) Kind { return KindText }
	}

	names := df.Names()
	columns := make([]Column, 0, len(names))

	for _, name := range names {
		s := df.Col(name)
		col, err := fromSeries(s, name, labelKind)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return New(columns...)
}

func fromSeries(s series.Series, name string, labelKind func(string) Kind) (Column, error) {
	col := Column{Name: name, Cells: make([]Cell, s.Len())}

	switch s.Type() {
	case series.Int:
		col.Kind = KindInteger
	case series.Float:
		col.Kind = KindFloat
	case series.Bool:
		col.Kind = KindBoolean
	case series.String:
		col.Kind = labelKind(name)
	default:
		col.Kind = KindOther
	}

	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}

		switch col.Kind {
		case KindInteger:
			v, err := e.Int()
			if err != nil {
				return Column{}, fmt.Errorf("%w: column %q row %d: %v", ErrMalformedCSV, name, i, err)
			}
			col.Cells[i] = IntCell(int64(v))
		case KindFloat:
			col.Cells[i] = FloatCell(e.Float())
		case KindBoolean:
			v, err := e.Bool()
			if err != nil {
				return Column{}, fmt.Errorf("%w: column %q row %d: %v", ErrMalformedCSV, name, i, err)
			}
			col.Cells[i] = BoolCell(v)
		default:
			col.Cells[i] = TextCell(e.String())
		}
	}

	return col, nil
}
