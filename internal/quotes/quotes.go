package quotes

// Package quotes carries the fixed motivational quote list shown on tracker
// cards, plus the random picker that assigns a quote index to each new
// tracker. The index is drawn once at creation and never rerolled.

import (
	"math/rand"
)

// list is the fixed, ordered quote pool. Tracker records persist an index
// into this list, so entries may be appended but never reordered or removed.
var list = []string{
	"The secret of getting ahead is getting started.",
	"A goal without a deadline is just a dream.",
	"Done is better than perfect.",
	"Little by little, a little becomes a lot.",
	"Focus on progress, not perfection.",
	"The best way to predict the future is to create it.",
	"Discipline is choosing between what you want now and what you want most.",
	"It always seems impossible until it is done.",
	"You don't have to be great to start, but you have to start to be great.",
	"Action is the foundational key to all success.",
	"What gets measured gets managed.",
	"Start where you are. Use what you have. Do what you can.",
}

// Count returns the number of available quotes
func Count() int {
	return len(list)
}

// Get returns the quote at the given index. Out-of-range indexes fall back
// to the first quote so a stale persisted index can never panic.
func Get(index int) string {
	if index < 0 || index >= len(list) {
		return list[0]
	}
	return list[index]
}

// Picker draws uniformly distributed quote indexes. The randomness source
// is injected so tests can pin the sequence with a fixed seed.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker backed by the given source
func NewPicker(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// Pick returns a random index into the quote list
func (p *Picker) Pick() int {
	return p.rng.Intn(len(list))
}

// Get returns the quote at the given index, with the same out-of-range
// fallback as the package-level Get.
func (p *Picker) Get(index int) string {
	return Get(index)
}
