package deck

// Shuffle returns every card to the deck and puts all 52 in a uniformly
// random order (Fisher-Yates). The draw cursor is reset to 0.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.src.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.drawn = 0
}
