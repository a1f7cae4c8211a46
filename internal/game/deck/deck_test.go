package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCategory(texts ...string) Category {
	cards := make([]CardItem, len(texts))
	for i, text := range texts {
		cards[i] = CardItem{ID: fmt.Sprintf("card_%d", i), Text: text}
	}
	return Category{ID: "cat_test", Name: "Test", Cards: cards}
}

func TestDealer_NoRepeatDraws(t *testing.T) {
	t.Parallel()

	cat := makeCategory("Titanic", "Matrix", "Shrek", "Coco", "Barbie")
	d := NewDealer(cat)

	seen := make(map[string]bool)
	for i := range len(cat.Cards) {
		card, ok := d.Draw()
		require.True(t, ok, "draw %d should succeed", i+1)
		assert.False(t, seen[card.Text], "card %q dealt twice", card.Text)
		seen[card.Text] = true
	}

	// The (N+1)-th draw always reports exhaustion
	_, ok := d.Draw()
	assert.False(t, ok)
	assert.Zero(t, d.Remaining())
}

func TestDealer_Remaining(t *testing.T) {
	t.Parallel()

	d := NewDealer(makeCategory("A", "B", "C"))
	assert.Equal(t, 3, d.Remaining())

	_, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, 2, d.Remaining())
}

func TestDealer_Reset(t *testing.T) {
	t.Parallel()

	d := NewDealer(makeCategory("A", "B"))
	d.Draw()
	d.Draw()
	require.Zero(t, d.Remaining())

	d.Reset()
	assert.Equal(t, 2, d.Remaining())
	_, ok := d.Draw()
	assert.True(t, ok)
}

func TestDealer_DuplicateTextDealtOnce(t *testing.T) {
	t.Parallel()

	// Used tracking is keyed by text: a duplicate entry is treated as
	// already drawn once its twin has been dealt.
	cat := Category{
		ID:   "cat_dup",
		Name: "Dup",
		Cards: []CardItem{
			{ID: "card_1", Text: "Batman"},
			{ID: "card_2", Text: "Batman"},
		},
	}
	d := NewDealer(cat)

	card, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, "Batman", card.Text)

	_, ok = d.Draw()
	assert.False(t, ok, "second copy of the same text is never dealt")
}

func TestDealer_EmptyCategory(t *testing.T) {
	t.Parallel()

	d := NewDealer(Category{ID: "cat_empty", Name: "Empty"})
	_, ok := d.Draw()
	assert.False(t, ok)
}
