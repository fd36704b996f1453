package signals

import (
	"reflect"
	"strings"
	"testing"
)

func TestFindLotNumbers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     []string
	}{
		{
			name:     "lot before keyword",
			text:     "... Lot 12 ... travaux de menuiserie ...",
			keywords: []string{"menuiserie"},
			want:     []string{"lot-12"},
		},
		{
			name:     "colon form",
			text:     "lot: 7 fourniture et pose de serrurerie",
			keywords: []string{"serrurerie"},
			want:     []string{"lot-7"},
		},
		{
			name:     "reversed form",
			text:     "3 - Lot concernant la métallerie du bâtiment",
			keywords: []string{"métallerie"},
			want:     []string{"lot-3"},
		},
		{
			name:     "alphanumeric lot",
			text:     "LOT A12 : remplacement des clôtures du site",
			keywords: []string{"clôtures"},
			want:     []string{"lot-A12"},
		},
		{
			name:     "multiple lots sorted",
			text:     "Lot 2 menuiserie intérieure puis Lot 10 menuiserie extérieure",
			keywords: []string{"menuiserie"},
			want:     []string{"lot-10", "lot-2"},
		},
		{
			name:     "keyword without preceding lot",
			text:     "travaux de menuiserie sans allotissement",
			keywords: []string{"menuiserie"},
			want:     nil,
		},
		{
			name:     "keyword absent",
			text:     "Lot 5 travaux divers",
			keywords: []string{"ascenseur"},
			want:     nil,
		},
		{
			name:     "case insensitive keyword",
			text:     "Lot 4 MENUISERIE ALUMINIUM",
			keywords: []string{"menuiserie"},
			want:     []string{"lot-4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindLotNumbers(tt.text, tt.keywords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindLotNumbersLookbackWindow(t *testing.T) {
	// A lot mention more than 1000 characters before the keyword is out of
	// the scan window.
	text := "Lot 9 " + strings.Repeat("x ", 600) + "menuiserie"
	got := FindLotNumbers(text, []string{"menuiserie"})
	if len(got) != 0 {
		t.Errorf("lot outside lookback window was found: %v", got)
	}
}

func TestFindLotNumbersUnionAcrossKeywords(t *testing.T) {
	text := "Lot 1 serrurerie du hall. Lot 2 menuiserie des étages."
	got := FindLotNumbers(text, []string{"serrurerie", "menuiserie"})
	want := []string{"lot-1", "lot-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
