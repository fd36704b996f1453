package signals

import (
	"strings"
	"testing"
)

func TestExtractLinksAnchorPhrase(t *testing.T) {
	text := `Avis de marché publié au BOAMP.
Documents de marché : https://www.achatpublic.com/sdm/ent/gen/ent_detail.do?id=42
Date limite de réponse fixée au 15 avril.`

	got := ExtractLinks(text)
	if len(got) == 0 {
		t.Fatal("expected at least one link")
	}
	want := "https://www.achatpublic.com/sdm/ent/gen/ent_detail.do?id=42"
	if got[0] != want {
		t.Errorf("got primary link %q, want %q", got[0], want)
	}
}

func TestExtractLinksPlatformWithoutScheme(t *testing.T) {
	text := "Retrait des dossiers sur www.achatpublic.com/sdm/ent/gen/index.jsp avant la date limite."

	got := ExtractLinks(text)
	if len(got) == 0 {
		t.Fatal("expected at least one link")
	}
	if !strings.HasPrefix(got[0], "https://www.achatpublic.com/") {
		t.Errorf("platform URL not fully qualified: %q", got[0])
	}
}

func TestExtractLinksProximity(t *testing.T) {
	text := "Informations sur le marche\nvoir https://plateforme.example-marches.fr/dossier/42\nsuite"

	got := ExtractLinks(text)
	if len(got) != 1 {
		t.Fatalf("got %d links, want 1: %v", len(got), got)
	}
	if got[0] != "https://plateforme.example-marches.fr/dossier/42" {
		t.Errorf("unexpected link: %q", got[0])
	}
}

func TestExtractLinksFallbackRanking(t *testing.T) {
	// No anchor phrase, no platform mention, no "marche" line: the
	// whole-text harvest kicks in and only relevant URLs survive.
	text := `Contact: https://exemple-totalement-autre.net/page
Avis disponible sur https://www.example.gouv.fr/consultation/dossier-2024
Voir aussi https://www.boamp.fr/avis/detail/24-12345`

	got := ExtractLinks(text)
	if len(got) < 2 {
		t.Fatalf("got %d links, want at least 2: %v", len(got), got)
	}
	// boamp.fr is a known top domain; it outranks the generic gouv.fr URL.
	if !strings.Contains(got[0], "boamp.fr") {
		t.Errorf("got primary %q, want boamp.fr ranked first", got[0])
	}
	for _, u := range got {
		if strings.Contains(u, "exemple-totalement-autre") {
			t.Errorf("irrelevant URL survived the filter: %q", u)
		}
	}
}

func TestExtractLinksDeduplicates(t *testing.T) {
	text := `Documents de marché : https://www.achatpublic.com/sdm/ent/x
documents : https://www.achatpublic.com/sdm/ent/x`

	got := ExtractLinks(text)
	if len(got) != 1 {
		t.Errorf("got %d links, want 1 after dedup: %v", len(got), got)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "https://www.achatpublic.com/sdm/ent/x", "https://www.achatpublic.com/sdm/ent/x"},
		{"trailing punctuation stripped", "https://example.fr/page).", "https://example.fr/page"},
		{"leading bracket stripped", "(https://example.fr/page", "https://example.fr/page"},
		{"bare www prefixed", "www.example.fr/page", "https://www.example.fr/page"},
		{"bare platform domain prefixed", "achatpublic.com/sdm/x", "https://www.achatpublic.com/sdm/x"},
		{"known path qualified", "/sdm/ent/gen/index.jsp", "https://www.achatpublic.com/sdm/ent/gen/index.jsp"},
		{"unknown path rejected", "/some/random/path", ""},
		{"garbage rejected", "not a url", ""},
		{"empty rejected", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeURL(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Normalizing twice must be a no-op for anything the normalizer accepts.
func TestNormalizeURLIdempotent(t *testing.T) {
	inputs := []string{
		"https://www.achatpublic.com/sdm/ent/x",
		"www.example.fr/page",
		"/sdm/ent/gen/index.jsp",
		"(https://example.gouv.fr/avis).",
	}
	for _, in := range inputs {
		once := NormalizeURL(in)
		if once == "" {
			continue
		}
		twice := NormalizeURL(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
