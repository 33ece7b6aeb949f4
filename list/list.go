// Package list implements a singly-linked list of ints.
//
// Most operations are defined relative to a subject node (the receiver)
// rather than to the head of the list: sizes and positions are counted
// from the subject. A List wraps a head node for callers that need to
// replace the head or hold an empty list.
package list

import (
	"strconv"
	"strings"
)

// A Node is one element of a chain. A Node owns its successor.
type Node struct {
	Val  int
	next *Node
}

// New returns a one-node chain holding val.
func New(val int) *Node {
	return &Node{Val: val}
}

// Next returns the node following n, or nil if n is the tail.
func (n *Node) Next() *Node {
	return n.next
}

// Size returns the number of nodes after n. The subject itself is not
// counted, so Size of a one-node chain is 0.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	count := 0
	for node := n.next; node != nil; node = node.next {
		count++
	}
	return count
}

func (n *Node) tail() *Node {
	node := n
	for node.next != nil {
		node = node.next
	}
	return node
}

// AppendValue attaches a new node holding val after the last node of the
// chain. The complexity is O(n) in the length of the chain after n.
func (n *Node) AppendValue(val int) {
	n.tail().next = New(val)
}

// LinkNext makes m the successor of n. Whatever followed n before is
// dropped from the chain. Unlike AppendValue it does not walk to the tail.
func (n *Node) LinkNext(m *Node) {
	n.next = m
}

// at returns the node i steps after n. The caller checks bounds.
func (n *Node) at(i int) *Node {
	node := n
	for ; i > 0; i-- {
		node = node.next
	}
	return node
}

// InsertValue inserts val so that it becomes the element at zero-based
// position pos counted from n. Valid positions run from 0 to n.Size()+1;
// anything else returns a *PositionError.
//
// Inserting at position 0 keeps n in place: n takes val and its old value
// moves into a new node directly after it.
func (n *Node) InsertValue(val, pos int) error {
	size := n.Size()
	if pos < 0 || pos > size+1 {
		return &PositionError{Op: "insert", Position: pos, Size: size}
	}
	if pos == 0 {
		n.next = &Node{Val: n.Val, next: n.next}
		n.Val = val
		return nil
	}
	prev := n.at(pos - 1)
	prev.next = &Node{Val: val, next: prev.next}
	return nil
}

// LinkAt splices m into the chain so that it becomes the element at
// zero-based position pos counted from n. The successor m had before is
// overwritten. Valid positions run from 1 to n.Size()+1: n cannot be
// preceded from itself, so use List.Push to replace a head.
func (n *Node) LinkAt(pos int, m *Node) error {
	size := n.Size()
	if pos < 1 || pos > size+1 {
		return &PositionError{Op: "link", Position: pos, Size: size}
	}
	prev := n.at(pos - 1)
	m.next = prev.next
	prev.next = m
	return nil
}

// Remove deletes the node pos steps after n. Valid positions run from 1
// to n.Size(). The removed node is unlinked from the chain.
func (n *Node) Remove(pos int) error {
	size := n.Size()
	if pos < 1 || pos > size {
		return &PositionError{Op: "remove", Position: pos, Size: size}
	}
	prev := n.at(pos - 1)
	victim := prev.next
	prev.next = victim.next
	victim.next = nil
	return nil
}

// Format renders the chain starting at n as [v1<delim>v2<delim>...].
// A nil chain renders as [].
func (n *Node) Format(delim string) string {
	var b strings.Builder
	b.WriteByte('[')
	for node := n; node != nil; node = node.next {
		b.WriteString(strconv.Itoa(node.Val))
		if node.next != nil {
			b.WriteString(delim)
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (n *Node) String() string {
	return n.Format(DefaultDelimiter)
}

// DefaultDelimiter separates values in String.
const DefaultDelimiter = ";"
