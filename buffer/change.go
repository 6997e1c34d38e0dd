package buffer

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective text edit.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is the payload of the most recent effective mutation.
// Caret-only moves carry no AppliedEdits.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// TextChanged reports whether the change edited text.
func (c Change) TextChanged() bool { return len(c.AppliedEdits) > 0 }

// CursorMoved reports whether the caret address changed.
func (c Change) CursorMoved() bool { return c.CursorBefore != c.CursorAfter }

type changeBuilder struct {
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	appliedEdits    []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateFromInternal(b.sel),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(b.sel),
		AppliedEdits:    append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}
