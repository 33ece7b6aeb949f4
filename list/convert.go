package list

// FromSlice builds a chain holding s in order. It returns nil for an
// empty s.
func FromSlice(s ...int) *Node {
	var head *Node
	for i := len(s) - 1; i >= 0; i-- {
		head = &Node{Val: s[i], next: head}
	}
	return head
}

// ToSlice returns the values of the chain starting at head.
func ToSlice(head *Node) []int {
	var s []int
	for node := head; node != nil; node = node.next {
		s = append(s, node.Val)
	}
	return s
}

// Len returns the number of nodes in the chain starting at head,
// counting head itself.
func Len(head *Node) int {
	n := 0
	for node := head; node != nil; node = node.next {
		n++
	}
	return n
}

// Merge returns a new chain that alternates values from a and b:
// a0, b0, a1, b1, and so on. It stops as soon as either input runs out,
// so the tail of the longer chain is dropped. Neither input is modified.
func Merge(a, b *Node) *Node {
	var head, last *Node
	add := func(val int) {
		node := New(val)
		if last == nil {
			head = node
		} else {
			last.next = node
		}
		last = node
	}
	for ; a != nil && b != nil; a, b = a.next, b.next {
		add(a.Val)
		add(b.Val)
	}
	return head
}
