package contracts

import (
	"encoding/json"
	"testing"
)

func TestQualityFlags_OKForModel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  bool
	}{
		{"perfect", 1.0, true},
		{"at threshold", 0.5, true},
		{"below threshold", 0.4999, false},
		{"zero", 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := QualityFlags{QualityScore: tt.score}
			if got := f.OKForModel(); got != tt.want {
				t.Errorf("OKForModel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingnessTable(t *testing.T) {
	table := MissingnessTable{Rows: []MissingnessRow{
		{Column: "b", MissingCount: 3, MissingShare: 0.6},
		{Column: "a", MissingCount: 1, MissingShare: 0.2},
	}}

	if got := table.MaxShare(); got != 0.6 {
		t.Errorf("MaxShare() = %v, want 0.6", got)
	}

	row, ok := table.Get("a")
	if !ok || row.MissingCount != 1 {
		t.Errorf("Get(a) = %+v, %v", row, ok)
	}

	if _, ok := table.Get("zzz"); ok {
		t.Error("Get(zzz) should not be found")
	}

	empty := MissingnessTable{}
	if got := empty.MaxShare(); got != 0.0 {
		t.Errorf("empty MaxShare() = %v, want 0", got)
	}
}

func TestCorrelationMatrix_Get(t *testing.T) {
	one := 1.0
	m := CorrelationMatrix{
		Columns: []string{"x", "y"},
		Values:  [][]*float64{{&one, nil}, {nil, &one}},
	}

	v, ok := m.Get("x", "x")
	if !ok || v == nil || *v != 1.0 {
		t.Errorf("Get(x,x) = %v, %v", v, ok)
	}

	v, ok = m.Get("x", "y")
	if !ok || v != nil {
		t.Errorf("Get(x,y) should be present and undefined, got %v, %v", v, ok)
	}

	if _, ok := m.Get("x", "z"); ok {
		t.Error("Get(x,z) should not be found")
	}
}

func TestColumnProfile_JSONOmitsNothing(t *testing.T) {
	p := ColumnProfile{Name: "city", Dtype: "text", ExampleValues: []string{}}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, key := range []string{"min", "max", "mean", "std"} {
		v, ok := decoded[key]
		if !ok {
			t.Errorf("expected key %q in JSON", key)
		}
		if v != nil {
			t.Errorf("expected %q to be null, got %v", key, v)
		}
	}
}
