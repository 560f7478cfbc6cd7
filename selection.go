package fluent

// ComboItem is one selectable entry: display text, an optional icon and
// opaque user data. Items are owned by the SelectionModel holding them.
type ComboItem struct {
	Text     string
	Icon     *Icon
	UserData any
}

// SelectionModel maintains an ordered list of combo items and the current
// selection index (-1 when nothing is selected). Widgets hold a model by
// composition and receive the displayed value through the display hook.
//
// Invariant: CurrentIndex() is -1 or a valid index into the item list;
// every structural mutation restores it.
//
// Programmatic selection (SetCurrentIndex, SetCurrentText) is silent.
// User-driven selection (SelectItem, the path the drop-down menu takes)
// emits OnCurrentTextChanged followed by OnCurrentIndexChanged.
type SelectionModel struct {
	items           []*ComboItem
	currentIndex    int
	maxVisibleItems int

	// display applies the current item's text to the owning widget.
	display func(text string)

	// OnCurrentTextChanged fires when user-driven selection changes the
	// displayed text. Fires before OnCurrentIndexChanged.
	OnCurrentTextChanged func(text string)

	// OnCurrentIndexChanged fires when user-driven selection changes the
	// current index.
	OnCurrentIndexChanged func(index int)
}

// NewSelectionModel creates an empty model. The display hook may be nil.
func NewSelectionModel(display func(string)) *SelectionModel {
	return &SelectionModel{
		currentIndex:    -1,
		maxVisibleItems: -1,
		display:         display,
	}
}

func (m *SelectionModel) setText(text string) {
	if m.display != nil {
		m.display(text)
	}
}

func (m *SelectionModel) emitText(text string) {
	if m.OnCurrentTextChanged != nil {
		m.OnCurrentTextChanged(text)
	}
}

func (m *SelectionModel) emitIndex(index int) {
	if m.OnCurrentIndexChanged != nil {
		m.OnCurrentIndexChanged(index)
	}
}

// AddItem appends an item. Adding the first item silently makes it
// current: the index becomes 0 and the text is applied, but no change
// notifications fire.
func (m *SelectionModel) AddItem(text string, icon *Icon, userData any) {
	m.items = append(m.items, &ComboItem{Text: text, Icon: icon, UserData: userData})
	if len(m.items) == 1 {
		m.SetCurrentIndex(0)
	}
}

// AddItems appends plain-text items.
func (m *SelectionModel) AddItems(texts ...string) {
	for _, text := range texts {
		m.AddItem(text, nil, nil)
	}
}

// InsertItem inserts an item at index (clamped to [0, Count()]). If the
// insertion point is at or before the current index, the selection pointer
// follows the shifted entry through the user-driven selection path, so
// both notifications re-fire with the new position.
func (m *SelectionModel) InsertItem(index int, text string, icon *Icon, userData any) {
	index = clampInsertIndex(index, len(m.items))
	item := &ComboItem{Text: text, Icon: icon, UserData: userData}
	m.items = append(m.items, nil)
	copy(m.items[index+1:], m.items[index:])
	m.items[index] = item

	if index <= m.currentIndex {
		m.SelectItem(m.currentIndex + 1)
	}
}

// InsertItems inserts plain-text items starting at index.
func (m *SelectionModel) InsertItems(index int, texts ...string) {
	index = clampInsertIndex(index, len(m.items))
	for i, text := range texts {
		item := &ComboItem{Text: text}
		pos := index + i
		m.items = append(m.items, nil)
		copy(m.items[pos+1:], m.items[pos:])
		m.items[pos] = item
	}

	if len(texts) > 0 && index <= m.currentIndex {
		m.SelectItem(m.currentIndex + len(texts))
	}
}

// RemoveItem removes the item at index; out-of-range indices are a no-op.
//
// Removing below the current index shifts the selection pointer left via
// the user-driven path. Removing the current item selects its left
// neighbor the same way when one exists; when the first item was removed
// the selection resets to 0 (or -1 on an emptied list, clearing the
// displayed text) and both notifications fire unconditionally.
func (m *SelectionModel) RemoveItem(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}

	m.items = append(m.items[:index], m.items[index+1:]...)

	switch {
	case index < m.currentIndex:
		m.SelectItem(m.currentIndex - 1)
	case index == m.currentIndex:
		if index > 0 {
			m.SelectItem(m.currentIndex - 1)
		} else {
			if len(m.items) > 0 {
				m.SetCurrentIndex(0)
			} else {
				m.currentIndex = -1
				m.setText("")
			}
			m.emitText(m.CurrentText())
			m.emitIndex(m.currentIndex)
		}
	}
}

// SelectItem is the user-facing selection event (an item click in the
// drop-down). Same-index selections are a no-op; otherwise the index is
// set, the text applied, and both notifications fire (text first).
// Passing a valid index is the caller's responsibility: an out-of-range
// index leaves the selection unchanged but still emits, with the stale
// text and the index as given.
func (m *SelectionModel) SelectItem(index int) {
	if index == m.currentIndex {
		return
	}

	m.SetCurrentIndex(index)
	m.emitText(m.CurrentText())
	m.emitIndex(index)
}

// SetCurrentIndex sets the current index and applies the item's text.
// Out-of-range indices are a no-op. Emits no notifications; callers doing
// bulk rebuilds rely on this staying silent.
func (m *SelectionModel) SetCurrentIndex(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}

	m.currentIndex = index
	m.setText(m.items[index].Text)
}

// SetCurrentText selects the first item whose text matches. A no-op when
// the text already matches the current text or no item matches.
func (m *SelectionModel) SetCurrentText(text string) {
	if text == m.CurrentText() {
		return
	}

	if index := m.FindText(text); index >= 0 {
		m.SetCurrentIndex(index)
	}
}

// CurrentIndex returns the current index, -1 for none.
func (m *SelectionModel) CurrentIndex() int {
	return m.currentIndex
}

// CurrentText returns the current item's text, "" for none.
func (m *SelectionModel) CurrentText() string {
	if m.currentIndex < 0 || m.currentIndex >= len(m.items) {
		return ""
	}
	return m.items[m.currentIndex].Text
}

// CurrentData returns the current item's user data, nil for none.
func (m *SelectionModel) CurrentData() any {
	if m.currentIndex < 0 || m.currentIndex >= len(m.items) {
		return nil
	}
	return m.items[m.currentIndex].UserData
}

// ItemText returns the text at index, "" when out of range.
func (m *SelectionModel) ItemText(index int) string {
	if index < 0 || index >= len(m.items) {
		return ""
	}
	return m.items[index].Text
}

// ItemIcon returns the icon at index, nil when out of range.
func (m *SelectionModel) ItemIcon(index int) *Icon {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	return m.items[index].Icon
}

// ItemData returns the user data at index, nil when out of range.
func (m *SelectionModel) ItemData(index int) any {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	return m.items[index].UserData
}

// SetItemText replaces the text at index. If the item is the current
// selection, the displayed text refreshes.
func (m *SelectionModel) SetItemText(index int, text string) {
	if index < 0 || index >= len(m.items) {
		return
	}

	m.items[index].Text = text
	if m.currentIndex == index {
		m.setText(text)
	}
}

// SetItemIcon replaces the icon at index.
func (m *SelectionModel) SetItemIcon(index int, icon *Icon) {
	if index >= 0 && index < len(m.items) {
		m.items[index].Icon = icon
	}
}

// SetItemData replaces the user data at index.
func (m *SelectionModel) SetItemData(index int, data any) {
	if index >= 0 && index < len(m.items) {
		m.items[index].UserData = data
	}
}

// FindText returns the lowest index whose text matches, or -1.
func (m *SelectionModel) FindText(text string) int {
	for i, item := range m.items {
		if item.Text == text {
			return i
		}
	}
	return -1
}

// FindData returns the lowest index whose user data equals data, or -1.
// Comparison is ==; store comparable values or use FindFunc.
func (m *SelectionModel) FindData(data any) int {
	for i, item := range m.items {
		if item.UserData == data {
			return i
		}
	}
	return -1
}

// FindFunc returns the lowest index matching the predicate, or -1.
func (m *SelectionModel) FindFunc(match func(*ComboItem) bool) int {
	for i, item := range m.items {
		if match(item) {
			return i
		}
	}
	return -1
}

// Count returns the number of items.
func (m *SelectionModel) Count() int {
	return len(m.items)
}

// Item returns the item at index, nil when out of range.
func (m *SelectionModel) Item(index int) *ComboItem {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	return m.items[index]
}

// Clear removes all items and resets the index to -1, clearing the
// displayed text first when something was selected.
func (m *SelectionModel) Clear() {
	if m.currentIndex >= 0 {
		m.setText("")
	}
	m.items = nil
	m.currentIndex = -1
}

// MaxVisibleItems returns the menu row limit, -1 for unlimited.
func (m *SelectionModel) MaxVisibleItems() int {
	return m.maxVisibleItems
}

// SetMaxVisibleItems limits how many rows the drop-down shows at once.
func (m *SelectionModel) SetMaxVisibleItems(n int) {
	m.maxVisibleItems = n
}

func clampInsertIndex(index, count int) int {
	if index < 0 {
		return 0
	}
	if index > count {
		return count
	}
	return index
}
