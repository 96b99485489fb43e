package core

import "github.com/yourbasic/bit"

// EdgeBit is a set of edge indices. The zero value is an empty set.
//
// EdgeBit must not be copied by value after first use; use Clone.
type EdgeBit struct {
	set bit.Set
}

// NewEdgeBit returns a set holding the given edge indices.
func NewEdgeBit(edges ...int) *EdgeBit {
	b := new(EdgeBit)
	for _, e := range edges {
		b.set.Add(e)
	}
	return b
}

// Add inserts e.
func (b *EdgeBit) Add(e int) { b.set.Add(e) }

// Remove deletes e. Removing an absent index is a no-op.
func (b *EdgeBit) Remove(e int) { b.set.Delete(e) }

// Has reports whether e is in the set.
func (b *EdgeBit) Has(e int) bool { return b.set.Contains(e) }

// Count returns the number of indices in the set.
func (b *EdgeBit) Count() int { return b.set.Size() }

// Empty reports whether the set has no element.
func (b *EdgeBit) Empty() bool { return b.set.Empty() }

// Clear removes every element.
func (b *EdgeBit) Clear() { b.set.Set(new(bit.Set)) }

// Union adds every element of o to b.
func (b *EdgeBit) Union(o *EdgeBit) { b.set.SetOr(&b.set, &o.set) }

// Subtract removes every element of o from b.
func (b *EdgeBit) Subtract(o *EdgeBit) { b.set.SetAndNot(&b.set, &o.set) }

// Intersect keeps only the elements also present in o.
func (b *EdgeBit) Intersect(o *EdgeBit) { b.set.SetAnd(&b.set, &o.set) }

// Intersects reports whether b and o share at least one element.
func (b *EdgeBit) Intersects(o *EdgeBit) bool {
	small, large := b, o
	if small.Count() > large.Count() {
		small, large = large, small
	}
	return small.set.Visit(func(e int) bool { return large.set.Contains(e) })
}

// Equal reports whether b and o hold the same elements.
func (b *EdgeBit) Equal(o *EdgeBit) bool { return b.set.Equal(&o.set) }

// Clone returns an independent copy of b.
func (b *EdgeBit) Clone() *EdgeBit {
	c := new(EdgeBit)
	c.set.Set(&b.set)
	return c
}

// Each calls fn for every element in ascending order.
func (b *EdgeBit) Each(fn func(e int)) {
	b.set.Visit(func(e int) bool {
		fn(e)
		return false
	})
}

// Slice returns the elements in ascending order.
func (b *EdgeBit) Slice() []int {
	out := make([]int, 0, b.Count())
	b.Each(func(e int) { out = append(out, e) })
	return out
}

// String returns a compact textual form, e.g. {0 2 5..9}.
func (b *EdgeBit) String() string { return b.set.String() }
