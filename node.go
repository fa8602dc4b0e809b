package purse

import (
	"errors"
	"sync/atomic"
)

var (
	errTailLost     = errors.New("purse: tail of a live list could not be resolved")
	errNotMutating  = errors.New("purse: mutation ended on a node that was not being mutated")
	errBrokenLength = errors.New("purse: chain is shorter than its list length")
)

// node is a single cell of a chain. A node's data never changes after
// construction. Its next link starts out either pointing at the rest
// of the chain or empty, and an empty link may be filled in exactly
// once by splice.
type node[T any] struct {
	data T
	next atomic.Pointer[node[T]]

	// mutating is allocated separately so that it stays valid for
	// anyone still holding it after the node has been spliced past.
	mutating *atomic.Bool
}

func newNode[T any](data T, next *node[T]) *node[T] {
	n := node[T]{
		data:     data,
		mutating: new(atomic.Bool),
	}
	if next != nil {
		n.next.Store(next)
	}
	return &n
}

// index returns the node i links after n. Bounds are the caller's
// responsibility.
func (n *node[T]) index(i int) *node[T] {
	for ; i > 0; i-- {
		n = n.next.Load()
		if n == nil {
			panic(errBrokenLength)
		}
	}
	return n
}

// terminal reports whether nothing has been linked after n yet.
func (n *node[T]) terminal() bool {
	return n.next.Load() == nil
}

func (n *node[T]) tryBeginMutation() bool {
	return n.mutating.CompareAndSwap(false, true)
}

func (n *node[T]) endMutation() {
	if !n.mutating.CompareAndSwap(true, false) {
		panic(errNotMutating)
	}
}

// splice links right after n if n is still terminal and no one else
// is in the middle of doing the same. It never waits. A false return
// means that the caller has to copy instead.
func (n *node[T]) splice(right *node[T]) bool {
	if !n.terminal() {
		return false
	}

	if !n.tryBeginMutation() {
		return false
	}
	defer n.endMutation()

	if !n.terminal() {
		return false
	}

	n.next.Store(right)
	return true
}
