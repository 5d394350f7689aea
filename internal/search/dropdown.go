package search

// Dropdown tracks whether the history dropdown is shown. It becomes visible
// when the search input gains focus and hides on a pointer-down outside both
// the input and the dropdown, on submit, or when a history entry is picked.
type Dropdown struct {
	visible bool
}

func (d *Dropdown) Visible() bool { return d.visible }

// FocusInput reports the search input gaining focus.
func (d *Dropdown) FocusInput() {
	d.visible = true
}

// PointerDown reports a pointer-down and where it landed.
func (d *Dropdown) PointerDown(inInput, inDropdown bool) {
	if !inInput && !inDropdown {
		d.visible = false
	}
}

// Submit reports the search form being submitted.
func (d *Dropdown) Submit() {
	d.visible = false
}

// Select reports a history entry being chosen.
func (d *Dropdown) Select() {
	d.visible = false
}
