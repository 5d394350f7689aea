package app

import "github.com/angelcloset/storefront/internal/brand/domain"

// DefaultWindowSize is how many brands the slider shows at once.
const DefaultWindowSize = 5

// SliderWindow is a fixed-size window over the brand list, advanced one
// item at a time. Advancing is disabled at either boundary.
type SliderWindow struct {
	brands []domain.Brand
	size   int
	index  int
}

func NewSliderWindow(brands []domain.Brand, size int) *SliderWindow {
	if size <= 0 {
		size = DefaultWindowSize
	}
	return &SliderWindow{brands: brands, size: size}
}

// Visible is the currently windowed slice of brands.
func (w *SliderWindow) Visible() []domain.Brand {
	end := w.index + w.size
	if end > len(w.brands) {
		end = len(w.brands)
	}
	return w.brands[w.index:end]
}

func (w *SliderWindow) CanNext() bool {
	return w.index < len(w.brands)-w.size
}

func (w *SliderWindow) CanPrev() bool {
	return w.index > 0
}

// Next advances one item; reports whether the window moved.
func (w *SliderWindow) Next() bool {
	if !w.CanNext() {
		return false
	}
	w.index++
	return true
}

// Prev steps back one item; reports whether the window moved.
func (w *SliderWindow) Prev() bool {
	if !w.CanPrev() {
		return false
	}
	w.index--
	return true
}
