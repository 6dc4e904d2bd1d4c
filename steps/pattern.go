package steps

import (
	"fmt"
	"strconv"
	"strings"
)

// Len returns the number of steps in p.
func (p Pattern) Len() int { return len(p) }

// Sum returns the total span of p in semitones.
func (p Pattern) Sum() int {
	total := 0
	for _, s := range p {
		total += int(s)
	}
	return total
}

// Equal reports whether p and q hold the same steps in the same order.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p. A nil pattern clones to an empty one.
func (p Pattern) Clone() Pattern {
	out := make(Pattern, len(p))
	copy(out, p)
	return out
}

// Rotate returns p cyclically shifted left by k positions, so that
// Rotate(k)[0] == p[k mod len]. Negative k rotates right.
//
// Complexity: O(len) time and space.
func (p Pattern) Rotate(k int) Pattern {
	n := len(p)
	out := make(Pattern, n)
	if n == 0 {
		return out
	}
	k = ((k % n) + n) % n
	copy(out, p[k:])
	copy(out[n-k:], p[:k])
	return out
}

// Offsets returns the cumulative sums of p starting at start:
// [start, start+p[0], start+p[0]+p[1], …]. The result has len(p)+1 entries,
// the last being start+Sum().
func (p Pattern) Offsets(start int) []int {
	out := make([]int, 0, len(p)+1)
	out = append(out, start)
	acc := start
	for _, s := range p {
		acc += int(s)
		out = append(out, acc)
	}
	return out
}

// Ints returns the steps as plain integers.
func (p Pattern) Ints() []int {
	out := make([]int, len(p))
	for i, s := range p {
		out[i] = int(s)
	}
	return out
}

// String renders p as dash-separated step sizes, e.g. "2-1-2-2-1-2-2".
func (p Pattern) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}

// Key returns a compact string usable as a map key. Two patterns have the
// same key iff they are Equal. Patterns of single-digit steps map to one
// digit per step; any other pattern falls back to "~" and its String form.
func (p Pattern) Key() string {
	b := make([]byte, len(p))
	for i, s := range p {
		if s < 0 || s > 9 {
			return "~" + p.String()
		}
		b[i] = byte('0' + s)
	}
	return string(b)
}

// Validate checks that p is non-empty, uses only valid steps and sums to
// octave. The returned error wraps one of ErrEmptyPattern, ErrBadStep or
// ErrSumMismatch.
func Validate(p Pattern, octave int) error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	for i, s := range p {
		if !s.Valid() {
			return fmt.Errorf("%w: step %d is %d", ErrBadStep, i, s)
		}
	}
	if sum := p.Sum(); sum != octave {
		return fmt.Errorf("%w: got %d, want %d", ErrSumMismatch, sum, octave)
	}
	return nil
}

// Parse reads a pattern written as step sizes separated by dashes, commas
// or whitespace ("2-1-2", "2,1,2", "2 1 2"). A run of digits with no
// separators ("212") is read one digit per step.
//
// Parse checks syntax and step range only; use Validate to check the sum.
func Parse(s string) (Pattern, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 1 && len(fields[0]) > 1 {
		fields = strings.Split(fields[0], "")
	}
	if len(fields) == 0 {
		return nil, ErrEmptyPattern
	}

	p := make(Pattern, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		st := Step(v)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: %d in %q", ErrBadStep, v, s)
		}
		p = append(p, st)
	}
	return p, nil
}
