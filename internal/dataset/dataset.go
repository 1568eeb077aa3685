package dataset

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind is the storage type of a column, resolved once when the dataset is built
type Kind uint8

const (
	KindOther Kind = iota
	KindInteger
	KindFloat
	KindText
	KindCategorical
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindCategorical:
		return "categorical"
	case KindBoolean:
		return "boolean"
	}
	return "other"
}

// IsNumeric reports whether values of this kind support mean/std/min/max.
// Booleans count as 0/1.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat || k == KindBoolean
}

// IsQuantity reports whether the kind holds measured numbers, which excludes booleans
func (k Kind) IsQuantity() bool {
	return k == KindInteger || k == KindFloat
}

// IsCategory reports whether the kind holds labels
func (k Kind) IsCategory() bool {
	return k == KindText || k == KindCategorical
}

// Cell is one slot of a column. The zero Cell is the missing marker.
type Cell struct {
	Valid bool
	// Num holds the value for numeric kinds
	Num float64
	// Text is the canonical string form, used for distinct counting and examples
	Text string
}

// Missing returns the missing marker
func Missing() Cell {
	return Cell{}
}

// Column is a named, typed sequence of cells
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Len returns the number of rows in the column
func (c Column) Len() int {
	return len(c.Cells)
}

// Dataset is an in-memory rectangular table. It is not modified after New
// returns and may be read from several goroutines at once.
type Dataset struct {
	columns []Column
	rows    int
}

var (
	ErrRagged        = errors.New("columns have different lengths")
	ErrDuplicateName = errors.New("duplicate column name")
)

// New builds a dataset from columns in source order
func New(columns ...Column) (*Dataset, error) {
	ds := &Dataset{columns: columns}
	seen := make(map[string]struct{}, len(columns))

	for i, col := range columns {
		if _, dup := seen[col.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, col.Name)
		}
		seen[col.Name] = struct{}{}

		if i == 0 {
			ds.rows = col.Len()
			continue
		}
		if col.Len() != ds.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, expected %d", ErrRagged, col.Name, col.Len(), ds.rows)
		}
	}

	return ds, nil
}

// MustNew is New that panics on error, for fixtures
func MustNew(columns ...Column) *Dataset {
	ds, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return ds
}

// NumRows returns the row count
func (d *Dataset) NumRows() int {
	return d.rows
}

// NumCols returns the column count
func (d *Dataset) NumCols() int {
	return len(d.columns)
}

// Columns returns the columns in source order. Callers must not modify them.
func (d *Dataset) Columns() []Column {
	return d.columns
}

// Column looks up a column by name
func (d *Dataset) Column(name string) (Column, bool) {
	for _, col := range d.columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Names returns column names in source order
func (d *Dataset) Names() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Column builders. A nil argument is the missing marker; any other type than
// the one documented panics.

// IntColumn builds an integer column from int/int64 values or nil
func IntColumn(name string, values ...any) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
		case int:
			cells[i] = IntCell(int64(x))
		case int64:
			cells[i] = IntCell(x)
		default:
			panic(fmt.Sprintf("dataset: IntColumn %q: unsupported value %T", name, v))
		}
	}
	return Column{Name: name, Kind: KindInteger, Cells: cells}
}

// FloatColumn builds a float column from float64/int values or nil
func FloatColumn(name string, values ...any) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
		case float64:
			cells[i] = FloatCell(x)
		case int:
			cells[i] = FloatCell(float64(x))
		default:
			panic(fmt.Sprintf("dataset: FloatColumn %q: unsupported value %T", name, v))
		}
	}
	return Column{Name: name, Kind: KindFloat, Cells: cells}
}

// TextColumn builds a text column from string values or nil
func TextColumn(name string, values ...any) Column {
	return labelColumn(name, KindText, values)
}

// CategoricalColumn builds a categorical column from string values or nil
func CategoricalColumn(name string, values ...any) Column {
	return labelColumn(name, KindCategorical, values)
}

func labelColumn(name string, kind Kind, values []any) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
		case string:
			cells[i] = TextCell(x)
		default:
			panic(fmt.Sprintf("dataset: %s column %q: unsupported value %T", kind, name, v))
		}
	}
	return Column{Name: name, Kind: kind, Cells: cells}
}

// BoolColumn builds a boolean column from bool values or nil
func BoolColumn(name string, values ...any) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
		case bool:
			cells[i] = BoolCell(x)
		default:
			panic(fmt.Sprintf("dataset: BoolColumn %q: unsupported value %T", name, v))
		}
	}
	return Column{Name: name, Kind: KindBoolean, Cells: cells}
}

func IntCell(v int64) Cell {
	return Cell{Valid: true, Num: float64(v), Text: strconv.FormatInt(v, 10)}
}

// FloatCell folds -0 into 0 so both count as one distinct value
func FloatCell(v float64) Cell {
	if v == 0 {
		v = 0
	}
	return Cell{Valid: true, Num: v, Text: strconv.FormatFloat(v, 'g', -1, 64)}
}

func TextCell(v string) Cell {
	return Cell{Valid: true, Text: v}
}

func BoolCell(v bool) Cell {
	c := Cell{Valid: true, Text: strconv.FormatBool(v)}
	if v {
		c.Num = 1
	}
	return c
}
