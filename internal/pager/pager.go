// Package pager keeps a selection cursor and a fixed-size scroll window over
// a list. After every mutation pageStart <= position < pageStart+pageSize.
package pager

// Pager tracks the selected position and the first visible row of a list
type Pager struct {
	position  int
	pageStart int
	pageSize  int
	length    int
}

// New creates a pager over length items showing pageSize rows
func New(length, pageSize int) *Pager {
	p := &Pager{length: max(length, 0)}
	p.SetPageSize(pageSize)
	return p
}

// Position returns the selected index. It is meaningless on an empty list.
func (p *Pager) Position() int { return p.position }

// PageStart returns the index of the first visible row
func (p *Pager) PageStart() int { return p.pageStart }

// PageSize returns the number of visible rows
func (p *Pager) PageSize() int { return p.pageSize }

// Len returns the list length
func (p *Pager) Len() int { return p.length }

// Empty reports whether the list has no items
func (p *Pager) Empty() bool { return p.length == 0 }

// Reset moves the cursor and the window back to the top
func (p *Pager) Reset() {
	p.position = 0
	p.pageStart = 0
}

// SetLen replaces the list length and resets the cursor
func (p *Pager) SetLen(n int) {
	p.length = max(n, 0)
	p.Reset()
}

// SetPageSize changes the window height (at least 1) and scrolls so the
// cursor stays visible
func (p *Pager) SetPageSize(n int) {
	p.pageSize = max(n, 1)
	p.reveal()
}

// MoveBy moves the cursor by step rows, clamped to the list, scrolling the
// window by exactly the overshoot
func (p *Pager) MoveBy(step int) {
	if p.length == 0 {
		return
	}
	p.position = clamp(p.position+step, 0, p.length-1)
	p.reveal()
}

// MovePage jumps one page in direction (-1 up, 1 down). The cursor lands on
// the top row of the new page; at either end both snap to the boundary.
func (p *Pager) MovePage(direction int) {
	if p.length <= p.pageSize {
		return
	}
	newPos := p.pageStart + direction*p.pageSize
	switch {
	case newPos > p.length-p.pageSize:
		p.position = p.length - 1
		p.pageStart = p.length - p.pageSize
	case newPos < 0:
		p.position = 0
		p.pageStart = 0
	default:
		p.position = newPos
		p.pageStart = newPos
	}
}

// Window returns the [start, end) range of visible rows
func (p *Pager) Window() (start, end int) {
	start = p.pageStart
	end = min(p.pageStart+p.pageSize, p.length)
	return start, max(end, start)
}

// reveal scrolls the window so the cursor is inside it
func (p *Pager) reveal() {
	if p.pageStart > p.position {
		p.pageStart = p.position
	}
	if p.position >= p.pageStart+p.pageSize {
		p.pageStart = p.position - p.pageSize + 1
	}
}

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
