package records

import "testing"

func TestFilterByKeywords(t *testing.T) {
	recs := []Record{
		{"idweb": "A1", "objet": "Travaux de serrurerie et menuiserie"},
		{"idweb": "B2", "objet": "Construction de voirie"},
		{"idweb": "C3", "descripteur": []any{"Menuiserie", "Charpente"}},
	}

	tests := []struct {
		name     string
		keywords []string
		wantIDs  []string
		wantKws  []string
	}{
		{
			name:     "single keyword single match",
			keywords: []string{"serrurerie"},
			wantIDs:  []string{"A1"},
			wantKws:  []string{"serrurerie"},
		},
		{
			name:     "case insensitive across nested fields",
			keywords: []string{"menuiserie"},
			wantIDs:  []string{"A1", "C3"},
			wantKws:  []string{"menuiserie", "menuiserie"},
		},
		{
			name:     "record matching two keywords emitted twice",
			keywords: []string{"serrurerie", "menuiserie"},
			wantIDs:  []string{"A1", "A1", "C3"},
			wantKws:  []string{"serrurerie", "menuiserie", "menuiserie"},
		},
		{
			name:     "no matches",
			keywords: []string{"ascenseur"},
			wantIDs:  nil,
			wantKws:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByKeywords(recs, tt.keywords)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, rec := range got {
				if rec.ID() != tt.wantIDs[i] {
					t.Errorf("record %d: got id %q, want %q", i, rec.ID(), tt.wantIDs[i])
				}
				if rec.String(FieldKeyword) != tt.wantKws[i] {
					t.Errorf("record %d: got keyword %q, want %q", i, rec.String(FieldKeyword), tt.wantKws[i])
				}
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	recs := []Record{{"idweb": "A1", "objet": "serrurerie"}}
	FilterByKeywords(recs, []string{"serrurerie"})
	if _, ok := recs[0][FieldKeyword]; ok {
		t.Error("input record was mutated with keyword tag")
	}
}
