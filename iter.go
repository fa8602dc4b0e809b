package purse

import (
	"iter"
	"weak"
)

// Of returns a list of the given values in order.
func Of[T any](vals ...T) List[T] {
	var ls List[T]
	for i := len(vals) - 1; i >= 0; i-- {
		ls = Create(vals[i], ls)
	}
	return ls
}

// FromSeq returns a list of the values yielded by seq, in the order
// that they were yielded.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	var head, last *node[T]
	size := 0
	for v := range seq {
		n := newNode(v, nil)
		if last == nil {
			head = n
		} else {
			last.next.Store(n)
		}
		last = n
		size++
	}

	if head == nil {
		return List[T]{}
	}
	return List[T]{
		head: head,
		tail: weak.Make(last),
		size: size,
	}
}

// Collect returns the elements of ls as a new slice.
func Collect[T any](ls List[T]) []T {
	s := make([]T, 0, ls.size)
	for v := range ls.All() {
		s = append(s, v)
	}
	return s
}

// All returns an iterator over the elements of ls.
func (ls List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for i := range ls.size {
			if i > 0 {
				cur = cur.next.Load()
			}
			if !yield(cur.data) {
				return
			}
		}
	}
}

// Iter returns an Iterator positioned at the first element of ls.
func (ls List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{rest: ls}
}

// An Iterator steps through the elements of a list one at a time.
// Each call to Next consumes an element, so an Iterator can't be
// restarted, but the list that it came from is never changed and a
// new Iterator can always be created from it.
type Iterator[T any] struct {
	_ noCopy

	rest List[T]
}

// Next returns the next element. It returns false once every element
// has been returned.
func (it *Iterator[T]) Next() (v T, ok bool) {
	cur := it.rest
	v, ok = cur.First()
	if !ok {
		return v, false
	}

	it.rest = cur.Rest()
	return v, true
}

// Len returns the number of elements that have not been returned yet.
func (it *Iterator[T]) Len() int {
	return it.rest.size
}
