package list

// A List owns the head of a chain. The zero value is an empty list.
//
// Positions passed to List methods are zero-based indexes counted from
// the head, so List.Insert(v, 0) installs a new head node instead of
// rewriting the existing one.
type List struct {
	head *Node
}

// NewList returns a List holding vals in order.
func NewList(vals ...int) *List {
	return &List{head: FromSlice(vals...)}
}

// Head returns the first node, or nil if l is empty.
func (l *List) Head() *Node {
	return l.head
}

// Len returns the number of elements in l.
func (l *List) Len() int {
	return Len(l.head)
}

// Push makes val the new first element.
func (l *List) Push(val int) {
	l.head = &Node{Val: val, next: l.head}
}

// Append adds val at the end of l.
func (l *List) Append(val int) {
	if l.head == nil {
		l.head = New(val)
		return
	}
	l.head.AppendValue(val)
}

// Insert inserts val at index i. Valid indexes run from 0 to l.Len().
func (l *List) Insert(val, i int) error {
	if i == 0 {
		l.Push(val)
		return nil
	}
	if n := l.Len(); i < 0 || i > n {
		return &PositionError{Op: "insert", Position: i, Size: n}
	}
	return l.head.InsertValue(val, i)
}

// Remove deletes the element at index i. Valid indexes run from 0 to
// l.Len()-1.
func (l *List) Remove(i int) error {
	n := l.Len()
	if i < 0 || i >= n {
		return &PositionError{Op: "remove", Position: i, Size: n}
	}
	if i == 0 {
		old := l.head
		l.head = old.next
		old.next = nil
		return nil
	}
	return l.head.Remove(i)
}

// Merge returns a new List interleaving l and other as Merge does.
func (l *List) Merge(other *List) *List {
	return &List{head: Merge(l.head, other.head)}
}

// Clear drops every element. Nodes are unlinked one at a time so that no
// removed node keeps the rest of the chain reachable.
func (l *List) Clear() {
	node := l.head
	l.head = nil
	for node != nil {
		next := node.next
		node.next = nil
		node = next
	}
}

// Format renders l like Node.Format.
func (l *List) Format(delim string) string {
	return l.head.Format(delim)
}

func (l *List) String() string {
	return l.head.String()
}
