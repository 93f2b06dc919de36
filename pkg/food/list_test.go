package food

import "testing"

func TestListTotals(t *testing.T) {
	tests := []struct {
		name        string
		list        List
		wantKCal    int
		wantProtein int
	}{
		{
			name:        "empty list",
			list:        List{},
			wantKCal:    0,
			wantProtein: 0,
		},
		{
			name:        "nil list",
			list:        nil,
			wantKCal:    0,
			wantProtein: 0,
		},
		{
			name: "single record",
			list: List{
				{Description: "A", Serving: "1 cup", KCal: 100, ProteinGrams: 5},
			},
			wantKCal:    100,
			wantProtein: 5,
		},
		{
			name: "multiple records",
			list: List{
				{Description: "A", Serving: "1 cup", KCal: 100, ProteinGrams: 5},
				{Description: "B", Serving: "1 oz", KCal: 200, ProteinGrams: 20},
				{Description: "C", Serving: "1 tbsp", KCal: 150, ProteinGrams: 15},
			},
			wantKCal:    450,
			wantProtein: 40,
		},
		{
			name: "nil entries skipped",
			list: List{
				{Description: "A", Serving: "1 cup", KCal: 100, ProteinGrams: 5},
				nil,
			},
			wantKCal:    100,
			wantProtein: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kcal, protein := tt.list.Totals()
			if kcal != tt.wantKCal || protein != tt.wantProtein {
				t.Errorf("Totals() = (%d, %d), want (%d, %d)",
					kcal, protein, tt.wantKCal, tt.wantProtein)
			}
		})
	}
}

func TestListClone(t *testing.T) {
	a := &Record{Description: "A", Serving: "1 cup", KCal: 100, ProteinGrams: 5}
	b := &Record{Description: "B", Serving: "1 oz", KCal: 200, ProteinGrams: 20}
	orig := List{a, b}

	clone := orig.Clone()
	if len(clone) != len(orig) {
		t.Fatalf("Clone() length = %d, want %d", len(clone), len(orig))
	}

	// Records are shared, the slice is not
	if clone[0] != a || clone[1] != b {
		t.Error("Clone() should share record references")
	}
	clone[0] = b
	if orig[0] != a {
		t.Error("mutating the clone should not affect the original slice")
	}

	if c := (List)(nil).Clone(); c != nil {
		t.Error("Clone() of nil list should be nil")
	}
}

func TestListValidate(t *testing.T) {
	valid := List{
		{Description: "A", Serving: "1 cup", KCal: 100, ProteinGrams: 5},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid list returned %v", err)
	}

	invalid := List{
		{Description: "A", Serving: "1 cup", KCal: 100, ProteinGrams: 5},
		{Description: "", Serving: "1 oz"},
	}
	if err := invalid.Validate(); err == nil {
		t.Error("Validate() should fail on invalid record")
	}
}
