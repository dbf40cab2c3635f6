// SPDX-License-Identifier: MIT
// Package: geodome/geom
//
// alloc.go — explicit point-id allocation.
//
// Design:
//   • One Allocator per pipeline run; there is no package-level counter.
//   • Next hands out monotonically increasing ids.
//   • Reserve carves a contiguous Block out of the sequence so that a
//     worker can allocate without touching the shared Allocator. Reserving
//     blocks in face order yields exactly the ids sequential allocation
//     would have produced.

package geom

// IDSource hands out fresh point ids.
type IDSource interface {
	Next() PointID
}

// Allocator hands out monotonically increasing PointIDs. It is not safe for
// concurrent use; reserve Blocks up front and give each worker its own.
type Allocator struct {
	next PointID
}

// NewAllocator returns an Allocator whose first id is first.
// Panics if first < 1: zero and negative ids are reserved.
func NewAllocator(first PointID) *Allocator {
	if first < 1 {
		panic("geom: NewAllocator(first<1)")
	}
	return &Allocator{next: first}
}

// Next returns a fresh id.
func (a *Allocator) Next() PointID {
	id := a.next
	a.next++
	return id
}

// Peek returns the id the next call to Next would return.
func (a *Allocator) Peek() PointID {
	return a.next
}

// Reserve removes n consecutive ids from the sequence and returns them as a
// Block. n must be non-negative.
func (a *Allocator) Reserve(n int) *Block {
	if n < 0 {
		panic("geom: Allocator.Reserve(n<0)")
	}
	b := &Block{first: a.next, next: a.next, end: a.next + PointID(n)}
	a.next += PointID(n)
	return b
}

// Block is a contiguous id range reserved from an Allocator.
type Block struct {
	first PointID
	next  PointID
	end   PointID // exclusive
}

// Next returns the next id of the block. Panics when the block is exhausted,
// which means the reservation was sized wrongly.
func (b *Block) Next() PointID {
	if b.next >= b.end {
		panic("geom: Block exhausted")
	}
	id := b.next
	b.next++
	return id
}

// First returns the first id of the block.
func (b *Block) First() PointID { return b.first }

// Len returns the number of ids the block was reserved with.
func (b *Block) Len() int { return int(b.end - b.first) }

// Remaining returns the number of ids not yet handed out.
func (b *Block) Remaining() int { return int(b.end - b.next) }
