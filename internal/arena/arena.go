// Package arena provides the mutable token buffer used by the go-argv resolver.
// Tokens are consumed in place via a parallel bitset so that indices stay
// stable across resolution phases and a genuinely empty argument remains
// distinguishable from a consumed slot.
package arena

// Buffer holds the command line tokens of one parse run.
// Consuming a token marks it dead without shifting later indices.
type Buffer struct {
	tokens   []string
	consumed []bool
}

// New creates a buffer over a copy of args.
// The copy keeps the caller's argv slice untouched during resolution.
func New(args []string) *Buffer {
	b := &Buffer{
		tokens:   make([]string, len(args)),
		consumed: make([]bool, len(args)),
	}
	copy(b.tokens, args)
	return b
}

// Len returns the total number of slots, live or consumed.
func (b *Buffer) Len() int {
	return len(b.tokens)
}

// Live reports whether the slot at i still holds an unconsumed token.
func (b *Buffer) Live(i int) bool {
	return i >= 0 && i < len(b.tokens) && !b.consumed[i]
}

// At returns the token at i. Consumed slots return the empty string.
func (b *Buffer) At(i int) string {
	if !b.Live(i) {
		return ""
	}
	return b.tokens[i]
}

// Set overwrites the token at i. Used when a grouped short flag is
// removed from the middle of a cluster.
func (b *Buffer) Set(i int, s string) {
	if i >= 0 && i < len(b.tokens) {
		b.tokens[i] = s
	}
}

// Consume marks the slot at i as dead.
func (b *Buffer) Consume(i int) {
	if i >= 0 && i < len(b.tokens) {
		b.consumed[i] = true
	}
}

// NextLive returns the first live index at or after from, or -1 if none remains.
func (b *Buffer) NextLive(from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(b.tokens); i++ {
		if !b.consumed[i] {
			return i
		}
	}
	return -1
}

// LiveCount returns the number of unconsumed slots.
func (b *Buffer) LiveCount() int {
	n := 0
	for _, c := range b.consumed {
		if !c {
			n++
		}
	}
	return n
}
