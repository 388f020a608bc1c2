package crontime

import (
	"iter"
	"math/bits"
)

// maxDomainValue is the largest value a field domain may contain.
const maxDomainValue = 63

// valueSet uses a uint64 as a compact set of integers 0-63.
type valueSet uint64

func (s valueSet) has(value int) bool {
	if value < 0 || value > maxDomainValue {
		return false
	}
	return s&(1<<uint(value)) != 0
}

func (s *valueSet) add(value int) { *s |= 1 << uint(value) }

func (s valueSet) len() int { return bits.OnesCount64(uint64(s)) }

// values yields the members in ascending order.
func (s valueSet) values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for rest := uint64(s); rest != 0; rest &= rest - 1 {
			if !yield(bits.TrailingZeros64(rest)) {
				return
			}
		}
	}
}

func (s valueSet) slice() []int {
	out := make([]int, 0, s.len())
	for v := range s.values() {
		out = append(out, v)
	}
	return out
}

// rangeSet returns {low..high}; empty when low > high.
func rangeSet(low, high int) valueSet {
	var s valueSet
	for v := low; v <= high; v++ {
		s.add(v)
	}
	return s
}
