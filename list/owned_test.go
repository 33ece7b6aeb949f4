package list

import (
	"errors"
	"testing"
)

func TestListEmpty(t *testing.T) {
	var l List
	if l.Len() != 0 || l.Head() != nil {
		t.Fatalf("zero List: got len %d, head %v", l.Len(), l.Head())
	}
	if got, want := l.String(), "[]"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if err := l.Remove(0); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("Remove on empty list: got %v", err)
	}
	l.Append(4)
	checkSlice(t, "Append to empty", l.Head(), []int{4})
}

func TestListInsert(t *testing.T) {
	for _, tt := range []struct {
		vals []int
		val  int
		i    int
		want []int
	}{
		{nil, 1, 0, []int{1}},
		{[]int{1, 2, 3}, 0, 0, []int{0, 1, 2, 3}},
		{[]int{1, 2, 3}, 10, 1, []int{1, 10, 2, 3}},
		{[]int{1, 2, 3}, 10, 3, []int{1, 2, 3, 10}},
	} {
		l := NewList(tt.vals...)
		if err := l.Insert(tt.val, tt.i); err != nil {
			t.Errorf("Insert(%v, %d, %d): %s", tt.vals, tt.val, tt.i, err)
			continue
		}
		checkSlice(t, "Insert", l.Head(), tt.want)
	}
}

func TestListInsertHeadReplacesNode(t *testing.T) {
	l := NewList(1, 2)
	old := l.Head()
	if err := l.Insert(0, 0); err != nil {
		t.Fatal(err)
	}
	if l.Head() == old {
		t.Fatal("Insert at 0 reused the old head node")
	}
	if l.Head().Next() != old {
		t.Error("old head is not the second node")
	}
}

func TestListInsertOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 4} {
		l := NewList(1, 2, 3)
		err := l.Insert(9, i)
		var perr *PositionError
		if !errors.As(err, &perr) {
			t.Fatalf("Insert at %d: got %v", i, err)
		}
		if perr.Size != 3 {
			t.Errorf("Insert at %d: got size %d; want 3", i, perr.Size)
		}
	}
}

func TestListRemove(t *testing.T) {
	for _, tt := range []struct {
		vals []int
		i    int
		want []int
	}{
		{[]int{1}, 0, nil},
		{[]int{1, 2, 3}, 0, []int{2, 3}},
		{[]int{1, 2, 3}, 1, []int{1, 3}},
		{[]int{1, 2, 3}, 2, []int{1, 2}},
	} {
		l := NewList(tt.vals...)
		if err := l.Remove(tt.i); err != nil {
			t.Errorf("Remove(%v, %d): %s", tt.vals, tt.i, err)
			continue
		}
		checkSlice(t, "Remove", l.Head(), tt.want)
	}
	l := NewList(1, 2, 3)
	if err := l.Remove(3); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("Remove past end: got %v", err)
	}
}

func TestListMerge(t *testing.T) {
	a, b := NewList(1, 3, 5), NewList(2, 4)
	got := a.Merge(b)
	if want := "[1,2,3,4]"; got.Format(",") != want {
		t.Errorf("got %s; want %s", got.Format(","), want)
	}
}

func TestListClear(t *testing.T) {
	l := NewList(1, 2, 3)
	second := l.Head().Next()
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("after Clear: got len %d", l.Len())
	}
	if second.Next() != nil {
		t.Error("Clear left nodes linked")
	}
	l.Push(8)
	checkSlice(t, "Push after Clear", l.Head(), []int{8})
}
