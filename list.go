package purse

import (
	"fmt"
	"strings"
	"weak"
)

// List is a persistent singly-linked list. The zero value is an empty
// list that is ready to use.
//
// A List is a small value and is meant to be copied freely. Every
// List only ever reports the elements it held when it was created,
// even if other lists that share its nodes are later concatenated
// onto.
type List[T any] struct {
	head *node[T]

	// tail is weak so that holding a list never counts as holding its
	// last node a second time. It always resolves while head does.
	tail weak.Pointer[node[T]]
	size int
}

// Empty returns an empty list. It is equivalent to the zero value.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Create returns a list whose first element is data, followed by the
// elements of rest. It runs in constant time and does not copy rest.
func Create[T any](data T, rest List[T]) List[T] {
	head := newNode(data, rest.head)
	tail := rest.tail
	if rest.head == nil {
		tail = weak.Make(head)
	}

	return List[T]{
		head: head,
		tail: tail,
		size: rest.size + 1,
	}
}

// Prepend returns a new list with data in front of the elements of
// ls. ls itself is unaffected.
func (ls List[T]) Prepend(data T) List[T] {
	return Create(data, ls)
}

// Append returns a new list with data after the elements of ls. See
// [List.Concat] for its cost.
func (ls List[T]) Append(data T) List[T] {
	return ls.Concat(Create(data, List[T]{}))
}

// Concat returns a new list containing the elements of ls followed by
// the elements of right. Neither ls nor right, nor any other list
// sharing their nodes, is affected.
//
// If nothing has been concatenated onto the end of ls yet, the new
// list reuses the nodes of ls and the call takes constant time. This
// makes building a list by repeated appends linear overall.
// Otherwise, or if another goroutine is concatenating onto the same
// nodes at the same moment, the elements of ls are copied, which
// takes time proportional to the length of ls.
func (ls List[T]) Concat(right List[T]) List[T] {
	if ls.head == nil {
		return right
	}
	if right.head == nil {
		return ls
	}

	if ls.lastNode().splice(right.head) {
		return List[T]{
			head: ls.head,
			tail: right.tail,
			size: ls.size + right.size,
		}
	}

	return ls.copyOnto(right)
}

// copyOnto builds a fresh copy of the nodes of ls with right linked
// after the last of them.
func (ls List[T]) copyOnto(right List[T]) List[T] {
	head := newNode(ls.head.data, nil)
	last := head
	src := ls.head
	for range ls.size - 1 {
		src = src.next.Load()
		n := newNode(src.data, nil)
		last.next.Store(n)
		last = n
	}
	last.next.Store(right.head)

	return List[T]{
		head: head,
		tail: right.tail,
		size: ls.size + right.size,
	}
}

func (ls List[T]) lastNode() *node[T] {
	if ls.head == nil {
		return nil
	}

	n := ls.tail.Value()
	if n == nil {
		panic(errTailLost)
	}
	return n
}

// Len returns the number of elements in ls.
func (ls List[T]) Len() int {
	return ls.size
}

// First returns the first element of ls. It returns false if ls is
// empty.
func (ls List[T]) First() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.data, true
}

// Last returns the last element of ls. It returns false if ls is
// empty.
func (ls List[T]) Last() (v T, ok bool) {
	n := ls.lastNode()
	if n == nil {
		return v, false
	}
	return n.data, true
}

// Rest returns ls without its first element. The rest of an empty
// list is empty.
func (ls List[T]) Rest() List[T] {
	if ls.size <= 1 {
		return List[T]{}
	}

	return List[T]{
		head: ls.head.next.Load(),
		tail: ls.tail,
		size: ls.size - 1,
	}
}

// Index returns the element at index i. It panics with an
// [*IndexError] if i is out of range.
func (ls List[T]) Index(i int) T {
	if i < 0 || i >= ls.size {
		panic(&IndexError{Len: ls.size, Index: i})
	}
	return ls.head.index(i).data
}

// At is like [List.Index] but returns false instead of panicking if i
// is out of range.
func (ls List[T]) At(i int) (v T, ok bool) {
	if i < 0 || i >= ls.size {
		return v, false
	}
	return ls.head.index(i).data, true
}

// Shares reports whether ls and other are both non-empty and start at
// the same node, meaning that one was derived from the other without
// copying.
func (ls List[T]) Shares(other List[T]) bool {
	return ls.head != nil && ls.head == other.head
}

// String formats ls as its elements in order, comma-separated and
// enclosed in brackets.
func (ls List[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	i := 0
	for v := range ls.All() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, v)
		i++
	}
	buf.WriteByte(']')
	return buf.String()
}

// Equal reports whether a and b have the same length and equal
// elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but compares elements using eq.
func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	if a.Shares(b) {
		return true
	}

	na, nb := a.head, b.head
	for i := range a.size {
		if i > 0 {
			na, nb = na.next.Load(), nb.next.Load()
		}
		if !eq(na.data, nb.data) {
			return false
		}
	}
	return true
}

// An IndexError is the panic value of an out-of-range [List.Index].
type IndexError struct {
	Len   int
	Index int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: the len is %v but the index is %v", err.Len, err.Index)
}
