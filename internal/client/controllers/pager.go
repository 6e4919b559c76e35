package controllers

const (
	PageSize   = 10
	PageWindow = 5
)

// Pager splits items into fixed-size pages. Current is 1-based and always
// within [1, max(1, Pages())].
type Pager[T any] struct {
	items   []T
	current int
}

func NewPager[T any](items []T) *Pager[T] {
	return &Pager[T]{items: items, current: 1}
}

// Reset replaces the items and goes back to page 1.
func (p *Pager[T]) Reset(items []T) {
	p.items = items
	p.current = 1
}

// Replace swaps the items and keeps the current page when it still exists.
func (p *Pager[T]) Replace(items []T) {
	p.items = items
	p.Goto(p.current)
}

func (p *Pager[T]) Len() int {
	return len(p.items)
}

func (p *Pager[T]) Pages() int {
	return (len(p.items) + PageSize - 1) / PageSize
}

func (p *Pager[T]) Current() int {
	return p.current
}

func (p *Pager[T]) HasPrev() bool {
	return p.current > 1
}

func (p *Pager[T]) HasNext() bool {
	return p.current < p.Pages()
}

func (p *Pager[T]) Prev() {
	p.Goto(p.current - 1)
}

func (p *Pager[T]) Next() {
	p.Goto(p.current + 1)
}

// Goto moves to page n, clamped to the valid range.
func (p *Pager[T]) Goto(n int) {
	p.current = max(1, min(n, p.Pages()))
}

// Window returns up to PageWindow page numbers centered on the current page
// when possible.
func (p *Pager[T]) Window() []int {
	pages := p.Pages()
	start := max(1, p.current-PageWindow/2)
	end := min(pages, start+PageWindow-1)
	if end-start+1 < PageWindow {
		start = max(1, end-PageWindow+1)
	}

	out := make([]int, 0, PageWindow)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

// Slice returns the items on the current page.
func (p *Pager[T]) Slice() []T {
	from := (p.current - 1) * PageSize
	if from >= len(p.items) {
		return nil
	}
	to := min(from+PageSize, len(p.items))
	return p.items[from:to]
}
