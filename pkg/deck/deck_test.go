package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/config"
	"github.com/matzehuels/tabsheet/pkg/errors"
)

const tomlDeck = `
name = "Base"

[[cards]]
name = "Village"
set = "base"
count = 10

[[cards]]
name = "Cellar"
set = "base"
count = 10

[[cards]]
name = "Alchemist"
set = "alchemy"
`

func TestParseFormats(t *testing.T) {
	want := &Deck{Name: "Base", Cards: []card.Card{
		{Name: "Village", Set: "base", Count: 10},
		{Name: "Cellar", Set: "base", Count: 10},
		{Name: "Alchemist", Set: "alchemy"},
	}}

	yamlDeck := `
name: Base
cards:
  - {name: Village, set: base, count: 10}
  - {name: Cellar, set: base, count: 10}
  - {name: Alchemist, set: alchemy}
`
	jsonDeck := `{"name": "Base", "cards": [
		{"name": "Village", "set": "base", "count": 10},
		{"name": "Cellar", "set": "base", "count": 10},
		{"name": "Alchemist", "set": "alchemy"}]}`

	for format, data := range map[config.Format]string{
		config.FormatTOML: tomlDeck,
		config.FormatYAML: yamlDeck,
		config.FormatJSON: jsonDeck,
	} {
		t.Run(string(format), func(t *testing.T) {
			got, err := Parse([]byte(data), format)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		deck Deck
	}{
		{"empty", Deck{}},
		{"blank name", Deck{Cards: []card.Card{{Name: "  "}}}},
		{"control character", Deck{Cards: []card.Card{{Name: "Vil\x07lage"}}}},
		{"negative count", Deck{Cards: []card.Card{{Name: "Village", Count: -1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.deck.Validate(); !errors.Is(err, errors.ErrCodeInvalidDeck) {
				t.Errorf("Validate() = %v, want INVALID_DECK", err)
			}
		})
	}
}

func names(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name
	}
	return out
}

func TestSorted(t *testing.T) {
	d, err := Parse([]byte(tomlDeck), config.FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		order Order
		want  []string
	}{
		{"", []string{"Village", "Cellar", "Alchemist"}},
		{OrderFile, []string{"Village", "Cellar", "Alchemist"}},
		{OrderName, []string{"Alchemist", "Cellar", "Village"}},
		{OrderSet, []string{"Alchemist", "Cellar", "Village"}},
	}

	for _, tt := range tests {
		got, err := d.Sorted(tt.order)
		if err != nil {
			t.Fatalf("Sorted(%q) error: %v", tt.order, err)
		}
		if diff := cmp.Diff(tt.want, names(got)); diff != "" {
			t.Errorf("Sorted(%q) mismatch (-want +got):\n%s", tt.order, diff)
		}
	}

	if _, err := d.Sorted("random"); !errors.Is(err, errors.ErrCodeInvalidOptions) {
		t.Errorf("expected INVALID_OPTIONS, got %v", err)
	}
	if d.Cards[0].Name != "Village" {
		t.Error("Sorted modified the deck")
	}
}

func TestLoadNamesDeckAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prosperity.yaml")
	if err := os.WriteFile(path, []byte("cards:\n  - name: Bank\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d.Name != "prosperity" {
		t.Errorf("Name = %q, want prosperity", d.Name)
	}
}
