package kopilka

import (
	"encoding/json"
	"testing"
)

func TestNewCategoryPath(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
		depth    int
	}{
		{"simple", []string{"Food"}, "Food", 1},
		{"nested", []string{"Food", "Groceries", "Dairy"}, "Food / Groceries / Dairy", 3},
		{"whitespace collapsed", []string{"  Eating   Out "}, "Eating Out", 1},
		{"blanks dropped", []string{"Food", "", "  ", "Dairy"}, "Food / Dairy", 2},
		{"deep tail dropped", []string{"a", "b", "c", "d"}, "a / b / c", 3},
		{"empty", nil, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewCategoryPath(tt.segments...)
			if p.String() != tt.want {
				t.Errorf("String() = %q, want %q", p.String(), tt.want)
			}
			if p.Depth() != tt.depth {
				t.Errorf("Depth() = %d, want %d", p.Depth(), tt.depth)
			}
		})
	}
}

func TestParseCategoryPath(t *testing.T) {
	p := ParseCategoryPath("Food / Groceries")
	if p.Top() != "Food" || p.Depth() != 2 {
		t.Errorf("ParseCategoryPath = %v", p.Segments())
	}
	if !ParseCategoryPath("").IsZero() {
		t.Error("empty string should parse to the zero path")
	}
}

func TestCategoryPathEqual(t *testing.T) {
	a := NewCategoryPath("Food", "Groceries")
	b := NewCategoryPath("food", "  groceries ")
	if !a.Equal(b) {
		t.Errorf("%v should equal %v", a, b)
	}
	if a.Equal(NewCategoryPath("Food")) {
		t.Error("paths of different depth should not be equal")
	}
}

func TestCategoryPathJSON(t *testing.T) {
	p := NewCategoryPath("Food", "Groceries")
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["Food","Groceries"]` {
		t.Errorf("Marshal = %s", data)
	}

	var back CategoryPath
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(p) {
		t.Errorf("round trip = %v, want %v", back, p)
	}

	// a single string decodes as a one-segment path
	if err := json.Unmarshal([]byte(`"Food"`), &back); err != nil {
		t.Fatal(err)
	}
	if back.Top() != "Food" || back.Depth() != 1 {
		t.Errorf("string form = %v", back.Segments())
	}

	// the zero path marshals as null
	data, err = json.Marshal(CategoryPath{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("zero path Marshal = %s, want null", data)
	}
}
