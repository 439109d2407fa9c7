package search

import "strings"

// noSelection means keyboard navigation has not picked a result yet.
const noSelection = -1

// Commit is the outcome of an Enter press or a chip click: either a free-text
// query or a concrete result.
type Commit struct {
	Query string
	Item  *Item
}

// Widget models the search box: current input, dropdown visibility, keyboard
// selection and the per-session history snapshot. It is a plain state machine
// so the behavior can be driven and asserted without a UI.
type Widget struct {
	items    []Item
	query    string
	focused  bool
	dropdown bool
	selected int
	recent   []string
}

func NewWidget(items []Item, recent []string) *Widget {
	return &Widget{
		items:    items,
		selected: noSelection,
		recent:   recent,
	}
}

// Results are the live suggestions for the current input.
func (w *Widget) Results() []Item {
	return Suggest(w.items, w.query)
}

// VisibleResults applies the dropdown display cap.
func (w *Widget) VisibleResults() []Item {
	return Truncate(w.Results())
}

func (w *Widget) Query() string      { return w.query }
func (w *Widget) DropdownOpen() bool { return w.dropdown }
func (w *Widget) SelectedIndex() int { return w.selected }
func (w *Widget) Recent() []string   { return w.recent }

// ShowsRecent reports whether the dropdown renders the history section.
func (w *Widget) ShowsRecent() bool {
	return w.dropdown && w.query == "" && len(w.recent) > 0
}

// ShowsPopularTags reports whether the dropdown falls back to popular tags.
func (w *Widget) ShowsPopularTags() bool {
	return w.dropdown && w.query == "" && len(w.recent) == 0
}

// Focus opens the dropdown when there is something to show.
func (w *Widget) Focus() {
	w.focused = true
	if w.query != "" || len(w.recent) > 0 {
		w.dropdown = true
	}
}

// Input replaces the query. Changing the results always resets the keyboard
// selection.
func (w *Widget) Input(value string) {
	w.query = value
	w.dropdown = true
	w.selected = noSelection
}

// Clear empties the input and closes the dropdown.
func (w *Widget) Clear() {
	w.query = ""
	w.dropdown = false
	w.selected = noSelection
}

// ArrowDown moves the selection forward, wrapping to the first result.
func (w *Widget) ArrowDown() {
	results := w.Results()
	if len(results) == 0 {
		return
	}
	if w.selected < len(results)-1 {
		w.selected++
	} else {
		w.selected = 0
	}
}

// ArrowUp moves the selection back, wrapping to the last result.
func (w *Widget) ArrowUp() {
	results := w.Results()
	if len(results) == 0 {
		return
	}
	if w.selected > 0 {
		w.selected--
	} else {
		w.selected = len(results) - 1
	}
}

// Escape closes the dropdown but keeps the input.
func (w *Widget) Escape() {
	w.dropdown = false
	w.selected = noSelection
}

// ClickOutside dismisses the dropdown and drops focus.
func (w *Widget) ClickOutside() {
	w.dropdown = false
	w.focused = false
	w.selected = noSelection
}

// Enter commits the current state: a highlighted result wins over the raw
// query. Whitespace-only queries are a no-op.
func (w *Widget) Enter() (Commit, bool) {
	results := w.Results()
	if w.selected >= 0 && len(results) > 0 && w.selected < len(results) {
		item := results[w.selected]
		w.query = ""
		w.dropdown = false
		w.selected = noSelection
		return Commit{Item: &item}, true
	}

	if strings.TrimSpace(w.query) == "" {
		return Commit{}, false
	}

	committed := w.query
	w.dropdown = false
	w.selected = noSelection
	return Commit{Query: committed}, true
}

// ClickRecent commits a history entry or popular tag as the query.
func (w *Widget) ClickRecent(query string) (Commit, bool) {
	if strings.TrimSpace(query) == "" {
		return Commit{}, false
	}
	w.query = query
	w.dropdown = false
	w.selected = noSelection
	return Commit{Query: query}, true
}

// SetRecent refreshes the history snapshot after a commit.
func (w *Widget) SetRecent(recent []string) {
	w.recent = recent
}
