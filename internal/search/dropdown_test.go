package search

import "testing"

func TestDropdownTransitions(t *testing.T) {
	t.Run("hidden until input focus", func(t *testing.T) {
		var d Dropdown
		if d.Visible() {
			t.Fatal("dropdown should start hidden")
		}
		d.FocusInput()
		if !d.Visible() {
			t.Fatal("focus should show the dropdown")
		}
	})

	t.Run("pointer-down inside keeps it open", func(t *testing.T) {
		var d Dropdown
		d.FocusInput()

		d.PointerDown(true, false)
		if !d.Visible() {
			t.Fatal("click in the input must not dismiss")
		}
		d.PointerDown(false, true)
		if !d.Visible() {
			t.Fatal("click in the dropdown must not dismiss")
		}
	})

	t.Run("pointer-down outside dismisses", func(t *testing.T) {
		var d Dropdown
		d.FocusInput()
		d.PointerDown(false, false)
		if d.Visible() {
			t.Fatal("outside click should dismiss")
		}
	})

	t.Run("submit dismisses", func(t *testing.T) {
		var d Dropdown
		d.FocusInput()
		d.Submit()
		if d.Visible() {
			t.Fatal("submit should dismiss")
		}
	})

	t.Run("history selection dismisses", func(t *testing.T) {
		var d Dropdown
		d.FocusInput()
		d.Select()
		if d.Visible() {
			t.Fatal("selection should dismiss")
		}
	})
}
