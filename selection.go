package grouped

import "github.com/agiangrant/grouped/geom"

const selectionAll = 0xFFFF

// Selection is a text range inside the caption, or, when From is 0xFFFF, a
// bit-set of selected members in To.
type Selection struct {
	From, To uint16
}

// FullSelection selects the whole group.
var FullSelection = Selection{From: selectionAll, To: selectionAll}

// Full reports whether s selects the whole group.
func (s Selection) Full() bool {
	return s == FullSelection
}

// Empty reports whether s selects nothing.
func (s Selection) Empty() bool {
	return s.From == s.To && !s.Full()
}

// IsSubGroup reports whether s is a set of members.
func (s Selection) IsSubGroup() bool {
	return s.From == selectionAll && s.To != selectionAll
}

// IsGroupItem reports whether member index is in the member set.
func (s Selection) IsGroupItem(index int) bool {
	if index < 0 || index >= 15 {
		return false
	}
	return s.IsSubGroup() && s.To&(1<<index) != 0
}

// AddGroupItem adds member index to the member set.
func (s Selection) AddGroupItem(index int) Selection {
	bit := uint16(1) << index
	to := uint16(0)
	if s.IsSubGroup() {
		to = s.To
	}
	return Selection{From: selectionAll, To: to | bit}
}

// RemoveGroupItem removes member index from the member set.
func (s Selection) RemoveGroupItem(index int) Selection {
	bit := uint16(1) << index
	var to uint16
	switch {
	case s.Full():
		to = selectionAll &^ bit
	case s.IsSubGroup():
		to = s.To &^ bit
	default:
		return s
	}
	if to == 0 {
		return Selection{}
	}
	return Selection{From: selectionAll, To: to}
}

// SelectionInterval is a vertical band of the group painted as selected.
type SelectionInterval struct {
	Top    int
	Height int
}

// SelectionIntervals merges the rectangles of the selected members into
// ordered vertical bands. Members that overlap or touch vertically share a
// band. When the last member is selected its band runs to the bottom of the
// group so the caption area is covered.
func (g *Group) SelectionIntervals(selected func(i int) bool) []SelectionInterval {
	var result []SelectionInterval
	for i, part := range g.parts {
		if !selected(i) {
			continue
		}
		geometry := part.geometry
		if len(result) == 0 || separated(result[len(result)-1], geometry) {
			result = append(result, SelectionInterval{Top: geometry.Top(), Height: geometry.Height})
			continue
		}
		last := &result[len(result)-1]
		newTop := min(last.Top, geometry.Top())
		newHeight := max(last.Top+last.Height-newTop, geometry.Bottom()-newTop)
		*last = SelectionInterval{Top: newTop, Height: newHeight}
	}
	if n := len(g.parts); n > 0 && selected(n-1) {
		last := &result[len(result)-1]
		last.Height = g.height - last.Top
	}
	return result
}

func separated(band SelectionInterval, r geom.Rect) bool {
	return band.Top+band.Height < r.Top() || band.Top > r.Bottom()
}

// BubbleSelectionIntervals is SelectionIntervals for a Selection value.
func (g *Group) BubbleSelectionIntervals(sel Selection) []SelectionInterval {
	return g.SelectionIntervals(func(i int) bool {
		return sel.Full() || sel.IsGroupItem(i)
	})
}

// SelectedText returns the caption text covered by sel.
func (g *Group) SelectedText(sel Selection) string {
	if g.caption.Empty() || sel.IsSubGroup() || sel.Empty() {
		return ""
	}
	text := []rune(g.caption.Text())
	if sel.Full() {
		return string(text)
	}
	from := min(int(sel.From), len(text))
	to := min(int(sel.To), len(text))
	if from >= to {
		return ""
	}
	return string(text[from:to])
}
