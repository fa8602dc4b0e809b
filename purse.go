// Package purse provides a persistent singly-linked list.
//
// A [List] is an immutable value. Operations that would change a
// list return a new one instead, sharing as much of the underlying
// chain of nodes as possible. Lists may be read and concatenated
// concurrently from any number of goroutines without external
// locking.
package purse

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
