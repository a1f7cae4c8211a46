// Package deck holds the card model and the per-session dealer.
package deck

import "math/rand/v2"

// CardItem is a single prompt. ID only matters for administration; the
// engine identifies cards by text.
type CardItem struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

// Category is a named collection of cards. Read-only during a session;
// only the admin screens mutate it, through the content store.
type Category struct {
	ID    string     `yaml:"id" json:"id"`
	Name  string     `yaml:"name" json:"name"`
	Cards []CardItem `yaml:"cards" json:"cards"`
}

// Dealer draws random not-yet-used cards from one category for the
// lifetime of a session. Used tracking is keyed by card text: a duplicate
// text inside a category can be dealt only once per session.
type Dealer struct {
	category Category
	used     map[string]struct{}
}

// NewDealer creates a dealer with an empty used set.
func NewDealer(category Category) *Dealer {
	return &Dealer{
		category: category,
		used:     make(map[string]struct{}),
	}
}

// Draw picks a uniformly random card among those not drawn yet and marks
// it used in the same step, so a drawn-but-unscored card can never be
// dealt again. ok is false when the deck is exhausted, which is the
// normal end-of-session signal rather than an error.
func (d *Dealer) Draw() (card CardItem, ok bool) {
	available := make([]CardItem, 0, len(d.category.Cards))
	for _, c := range d.category.Cards {
		if _, drawn := d.used[c.Text]; !drawn {
			available = append(available, c)
		}
	}

	if len(available) == 0 {
		return CardItem{}, false
	}

	card = available[rand.IntN(len(available))]
	d.used[card.Text] = struct{}{}
	return card, true
}

// Remaining reports how many undrawn cards are left.
func (d *Dealer) Remaining() int {
	n := 0
	for _, c := range d.category.Cards {
		if _, drawn := d.used[c.Text]; !drawn {
			n++
		}
	}
	return n
}

// Reset clears the used set so the full category is dealable again.
func (d *Dealer) Reset() {
	d.used = make(map[string]struct{})
}
