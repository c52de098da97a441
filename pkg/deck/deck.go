// Package deck reads the ordered list of cards to print dividers for.
//
// A deck file lists cards in print order:
//
//	name = "Base game"
//
//	[[cards]]
//	name = "Village"
//	set = "base"
//	count = 10
//
// The same structure is accepted as YAML or JSON. Count only matters for
// wrappers, whose height grows with the stack they hold.
package deck

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/config"
	"github.com/matzehuels/tabsheet/pkg/errors"
)

// Order selects how cards are arranged before layout.
type Order string

const (
	OrderFile Order = "file" // as listed
	OrderName Order = "name" // alphabetical
	OrderSet  Order = "set"  // by set, then name
)

// ValidOrders is the set of supported orders.
var ValidOrders = map[Order]bool{
	OrderFile: true,
	OrderName: true,
	OrderSet:  true,
}

// Deck is a named, ordered list of cards.
type Deck struct {
	Name  string      `json:"name,omitempty" toml:"name" yaml:"name"`
	Cards []card.Card `json:"cards" toml:"cards" yaml:"cards"`
}

// Validate checks every entry.
func (d *Deck) Validate() error {
	if len(d.Cards) == 0 {
		return errors.New(errors.ErrCodeInvalidDeck, "deck has no cards")
	}
	for i, c := range d.Cards {
		if err := errors.ValidateCardName(c.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDeck, err, "card %d", i+1)
		}
		if c.Count < 0 {
			return errors.New(errors.ErrCodeInvalidDeck, "card %d (%s): count must not be negative", i+1, c.Name)
		}
	}
	return nil
}

// Sorted returns the cards in the given order. The sort is stable so
// equal keys keep their file order.
func (d *Deck) Sorted(order Order) ([]card.Card, error) {
	if order == "" {
		order = OrderFile
	}
	if !ValidOrders[order] {
		return nil, errors.New(errors.ErrCodeInvalidOptions,
			"invalid order: %q (must be one of: file, name, set)", order)
	}

	cards := slices.Clone(d.Cards)
	byName := func(a, b card.Card) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	switch order {
	case OrderName:
		slices.SortStableFunc(cards, byName)
	case OrderSet:
		slices.SortStableFunc(cards, func(a, b card.Card) int {
			if c := cmp.Compare(strings.ToLower(a.Set), strings.ToLower(b.Set)); c != 0 {
				return c
			}
			return byName(a, b)
		})
	}
	return cards, nil
}

// Parse decodes and validates a deck.
func Parse(data []byte, format config.Format) (*Deck, error) {
	var d Deck
	if err := config.Decode(data, format, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "decode deck")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads a deck file; the format follows the extension.
func Load(path string) (*Deck, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := config.FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "read %s", path)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}
