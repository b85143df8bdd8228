package pager

import (
	"math/rand"
	"testing"
)

func checkInvariant(t *testing.T, p *Pager, op string) {
	t.Helper()
	if p.Empty() {
		return
	}
	if p.Position() < 0 || p.Position() > p.Len()-1 {
		t.Fatalf("%s: position %d outside [0, %d]", op, p.Position(), p.Len()-1)
	}
	if !(p.PageStart() <= p.Position() && p.Position() < p.PageStart()+p.PageSize()) {
		t.Fatalf("%s: invariant broken: pageStart=%d position=%d pageSize=%d",
			op, p.PageStart(), p.Position(), p.PageSize())
	}
}

func TestMoveByScrollsByOvershoot(t *testing.T) {
	p := New(20, 5)

	p.MoveBy(4)
	if p.Position() != 4 || p.PageStart() != 0 {
		t.Fatalf("after MoveBy(4): position=%d pageStart=%d", p.Position(), p.PageStart())
	}

	p.MoveBy(3)
	if p.Position() != 7 || p.PageStart() != 3 {
		t.Errorf("after MoveBy(3): position=%d pageStart=%d, want 7 and 3", p.Position(), p.PageStart())
	}

	p.MoveBy(-6)
	if p.Position() != 1 || p.PageStart() != 1 {
		t.Errorf("after MoveBy(-6): position=%d pageStart=%d, want 1 and 1", p.Position(), p.PageStart())
	}
}

func TestMoveByClamps(t *testing.T) {
	p := New(3, 10)
	p.MoveBy(-5)
	if p.Position() != 0 {
		t.Errorf("position = %d, want 0", p.Position())
	}
	p.MoveBy(50)
	if p.Position() != 2 {
		t.Errorf("position = %d, want 2", p.Position())
	}
}

func TestMoveByZeroIsIdempotent(t *testing.T) {
	p := New(30, 7)
	p.MoveBy(12)
	pos, start := p.Position(), p.PageStart()

	p.MoveBy(0)
	if p.Position() != pos || p.PageStart() != start {
		t.Errorf("MoveBy(0) changed state: %d/%d -> %d/%d", pos, start, p.Position(), p.PageStart())
	}
}

func TestMoveOnEmptyListIsInert(t *testing.T) {
	p := New(0, 5)
	p.MoveBy(1)
	p.MovePage(1)
	p.MovePage(-1)
	if p.Position() != 0 || p.PageStart() != 0 {
		t.Errorf("empty pager moved: position=%d pageStart=%d", p.Position(), p.PageStart())
	}
	if start, end := p.Window(); start != 0 || end != 0 {
		t.Errorf("Window() = [%d, %d), want empty", start, end)
	}
}

func TestMovePage(t *testing.T) {
	tests := []struct {
		name               string
		length, pageSize   int
		startMove          int
		direction          int
		wantPos, wantStart int
	}{
		{"fits on one page", 5, 10, 2, 1, 2, 0},
		{"page down", 30, 10, 0, 1, 10, 10},
		{"page down snaps to last full page", 25, 10, 20, 1, 24, 15},
		{"page up snaps to top", 30, 10, 3, -1, 0, 0},
		{"page up", 30, 10, 25, -1, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.length, tt.pageSize)
			p.MoveBy(tt.startMove)
			p.MovePage(tt.direction)
			if p.Position() != tt.wantPos || p.PageStart() != tt.wantStart {
				t.Errorf("position=%d pageStart=%d, want %d and %d",
					p.Position(), p.PageStart(), tt.wantPos, tt.wantStart)
			}
			checkInvariant(t, p, tt.name)
		})
	}
}

func TestSetPageSizeKeepsCursorVisible(t *testing.T) {
	p := New(50, 20)
	p.MoveBy(19)

	p.SetPageSize(5)
	checkInvariant(t, p, "shrink")
	if p.PageStart() != 15 {
		t.Errorf("pageStart = %d, want 15", p.PageStart())
	}

	p.SetPageSize(-3)
	if p.PageSize() != 1 {
		t.Errorf("pageSize = %d, want 1", p.PageSize())
	}
	checkInvariant(t, p, "clamp")
}

func TestSetLenResets(t *testing.T) {
	p := New(50, 5)
	p.MoveBy(30)
	p.SetLen(10)
	if p.Position() != 0 || p.PageStart() != 0 || p.Len() != 10 {
		t.Errorf("SetLen did not reset: position=%d pageStart=%d len=%d", p.Position(), p.PageStart(), p.Len())
	}
}

func TestRandomOperationsKeepInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		p := New(rng.Intn(60), rng.Intn(15)-2)
		for i := 0; i < 100; i++ {
			switch rng.Intn(4) {
			case 0:
				p.MoveBy(rng.Intn(21) - 10)
				checkInvariant(t, p, "MoveBy")
			case 1:
				p.MovePage(rng.Intn(3) - 1)
				checkInvariant(t, p, "MovePage")
			case 2:
				p.SetPageSize(rng.Intn(15) - 2)
				checkInvariant(t, p, "SetPageSize")
			case 3:
				start, end := p.Window()
				if end-start > p.PageSize() || start > end {
					t.Fatalf("bad window [%d, %d)", start, end)
				}
			}
		}
	}
}
