// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import "testing"

//********************************************************************************************

func TestLRUListPushBackFrontOrder(t *testing.T) {
	l := NewLRUList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	if l.Len() != 3 {
		t.Fatalf("Len: expected 3, actual %d", l.Len())
	}
	if l.Front() != 1 {
		t.Fatalf("Front: expected 1, actual %d", l.Front())
	}
	l.PopFront()
	if l.Front() != 2 {
		t.Fatalf("Front after pop: expected 2, actual %d", l.Front())
	}
}

//********************************************************************************************

func TestLRUListMoveToBack(t *testing.T) {
	l := NewLRUList[int]()
	itA := l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	l.MoveToBack(itA)
	if l.Front() != 2 {
		t.Fatalf("Front after moving the original front to back: expected 2, actual %d", l.Front())
	}
	l.PopFront()
	l.PopFront()
	if l.Front() != 1 {
		t.Fatalf("Front after draining: expected 1 (moved element), actual %d", l.Front())
	}
}

//********************************************************************************************

func TestLRUListRemove(t *testing.T) {
	l := NewLRUList[int]()
	l.PushBack(1)
	itB := l.PushBack(2)
	l.PushBack(3)

	l.Remove(itB)
	if l.Len() != 2 {
		t.Fatalf("Len after removing the middle element: expected 2, actual %d", l.Len())
	}
	l.PopFront()
	if l.Front() != 3 {
		t.Fatalf("Front after removing 2 and popping 1: expected 3, actual %d", l.Front())
	}
}
