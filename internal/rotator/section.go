package rotator

// SectionKind identifies one of the sections of a rotator.
type SectionKind int

const (
	_ SectionKind = iota
	// SectionAuto is the section for selecting the "auto" option.
	SectionAuto
	// SectionPrev is the section showing the previous value.
	SectionPrev
	// SectionCurr is the section showing the current value, which toggles the
	// menu when clicked.
	SectionCurr
	// SectionNext is the section showing the next value.
	SectionNext
)

// ToString returns the name of the section kind, for logging purposes.
func (k SectionKind) ToString() string {
	switch k {
	case SectionAuto:
		return "auto"
	case SectionPrev:
		return "prev"
	case SectionCurr:
		return "curr"
	case SectionNext:
		return "next"
	}
	return "[unknown section]"
}

// LabelNode holds the animated properties of a section's label.
//
// While a rotation is animated, the label nodes of the prev, curr, and next
// sections are owned by that animation.
type LabelNode struct {
	MarginLeft  float64
	MarginRight float64
	Opacity     float64
}

// Offset returns the horizontal offset (in cells) the label is shifted by.
func (n LabelNode) Offset() int {
	shift := n.MarginLeft
	if shift < 0 {
		return int(shift - 0.5)
	}
	return int(shift + 0.5)
}

func (n *LabelNode) reset() {
	n.MarginLeft = 0
	n.MarginRight = 0
	n.Opacity = 1
}

// Section is a single clickable section of a rotator.
type Section[V comparable] struct {
	Kind  SectionKind
	Label string

	value    V
	hasValue bool

	Hidden   bool
	Hover    bool
	Active   bool
	Disabled bool

	Node LabelNode

	// LabelWidth is the width reserved for the label; 0 means the label's
	// own width.
	LabelWidth int

	X, Y, W int
}

// Value returns the value the section represents, if any.
func (s *Section[V]) Value() (V, bool) { return s.value, s.hasValue }

// Contains reports whether the given position is within the section.
func (s *Section[V]) Contains(x, y int) bool {
	return y == s.Y && x >= s.X && x < s.X+s.W
}

func (s *Section[V]) set(item Item[V]) {
	s.value = item.Value
	s.hasValue = true
	s.Label = item.Label
}

func (s *Section[V]) clear() {
	var zero V
	s.value = zero
	s.hasValue = false
	s.Label = ""
}

// SectionView holds the four sections of a rotator: auto, prev, curr, and
// next.
type SectionView[V comparable] struct {
	Auto *Section[V]
	Prev *Section[V]
	Curr *Section[V]
	Next *Section[V]

	isRtl   func() bool
	measure func(string) int

	widthsInitialized bool

	x, y int
}

func newSectionView[V comparable](autoLabel string, isRtl func() bool, measure func(string) int) *SectionView[V] {
	v := &SectionView[V]{
		Auto:    &Section[V]{Kind: SectionAuto, Label: autoLabel, Active: true},
		Prev:    &Section[V]{Kind: SectionPrev},
		Curr:    &Section[V]{Kind: SectionCurr},
		Next:    &Section[V]{Kind: SectionNext},
		isRtl:   isRtl,
		measure: measure,
	}
	for _, n := range v.labelNodes() {
		n.reset()
	}
	v.Auto.Node.reset()
	return v
}

// Sections returns the sections in display order, which is reversed in a
// right-to-left context (except for the auto section, which always leads).
func (v *SectionView[V]) Sections() []*Section[V] {
	if v.isRtl() {
		return []*Section[V]{v.Auto, v.Next, v.Curr, v.Prev}
	}
	return []*Section[V]{v.Auto, v.Prev, v.Curr, v.Next}
}

// Icon returns the icon shown next to the label of the given section.
func (v *SectionView[V]) Icon(kind SectionKind) rune {
	left, right := '◂', '▸'
	if v.isRtl() {
		left, right = right, left
	}
	switch kind {
	case SectionPrev:
		return left
	case SectionNext:
		return right
	case SectionCurr:
		return '▾'
	}
	return 0
}

// InitWidths reserves the maximum width any of the given labels may need in
// each section, such that rotating never changes a section's width.
//
// The prev section will never show the last label and the next section will
// never show the first one, so these are not considered for them.
func (v *SectionView[V]) InitWidths(labels []string) {
	currMax, prevMax, nextMax := 0, 0, 0
	for i, label := range labels {
		w := v.measure(label)
		if w > currMax {
			currMax = w
		}
		if i < len(labels)-1 && w > prevMax {
			prevMax = w
		}
		if i > 0 && w > nextMax {
			nextMax = w
		}
	}
	v.Curr.LabelWidth = currMax
	v.Prev.LabelWidth = prevMax
	v.Next.LabelWidth = nextMax
	v.Auto.LabelWidth = v.measure(v.Auto.Label)
	v.widthsInitialized = true
	v.Layout(v.x, v.y)
}

// WidthsInitialized reports whether InitWidths has been called.
func (v *SectionView[V]) WidthsInitialized() bool { return v.widthsInitialized }

// LabelWidth returns the width available to the section's label.
func (v *SectionView[V]) LabelWidth(s *Section[V]) int {
	if s.LabelWidth > 0 {
		return s.LabelWidth
	}
	return v.measure(s.Label)
}

// Layout places the sections in a row, starting at the given position.
// Hidden sections keep their space.
func (v *SectionView[V]) Layout(x, y int) {
	v.x, v.y = x, y
	col := x
	for _, s := range v.Sections() {
		s.X, s.Y = col, y
		if s.Kind == SectionAuto {
			s.W = v.LabelWidth(s) + 2
		} else {
			s.W = v.LabelWidth(s) + 4
		}
		col += s.W
	}
}

// Dimensions returns the dimensions of the area covered by all sections.
func (v *SectionView[V]) Dimensions() (x, y, w, h int) {
	w = 0
	for _, s := range v.Sections() {
		w += s.W
	}
	return v.x, v.y, w, 1
}

// SectionAt returns the visible section at the given position, if any.
func (v *SectionView[V]) SectionAt(x, y int) *Section[V] {
	for _, s := range v.Sections() {
		if !s.Hidden && s.Contains(x, y) {
			return s
		}
	}
	return nil
}

// SetHover marks the given section (which may be nil) as hovered, clearing the
// hover state of all others. Disabled sections cannot be hovered.
func (v *SectionView[V]) SetHover(hovered *Section[V]) {
	for _, s := range v.Sections() {
		if s.Disabled {
			continue
		}
		s.Hover = s == hovered
	}
}

// Activate marks the given section as active, which is the curr section if
// nil is given. The curr and auto sections are mutually exclusive in being
// active.
func (v *SectionView[V]) Activate(section *Section[V]) {
	for _, s := range []*Section[V]{v.Curr, v.Auto} {
		s.Hover = false
		s.Active = false
	}
	if section == nil {
		section = v.Curr
	}
	section.Active = true
}

// Deactivate clears the active state of the curr and auto sections.
func (v *SectionView[V]) Deactivate() {
	v.Curr.Active = false
	v.Auto.Active = false
}

// AutoActive reports whether the auto section is active.
func (v *SectionView[V]) AutoActive() bool { return v.Auto.Active }

// Disable disables the prev, curr, and next sections.
func (v *SectionView[V]) Disable() {
	for _, s := range []*Section[V]{v.Prev, v.Curr, v.Next} {
		s.Disabled = true
		s.Hover = false
	}
}

// Enable enables the prev, curr, and next sections.
func (v *SectionView[V]) Enable() {
	for _, s := range []*Section[V]{v.Prev, v.Curr, v.Next} {
		s.Disabled = false
	}
}

// render shows the item at the given index of the list in the curr section
// and its neighbors in the prev and next sections, hiding either of these if
// there is no neighbor on its side.
func (v *SectionView[V]) render(list *List[V], index int) {
	v.Prev.clear()
	v.Curr.clear()
	v.Next.clear()

	v.Curr.set(list.At(index))
	if index > 0 {
		v.Prev.set(list.At(index - 1))
	}
	if index < list.Len()-1 {
		v.Next.set(list.At(index + 1))
	}

	v.Prev.Hidden = index == 0
	v.Next.Hidden = index == list.Len()-1

	if !v.widthsInitialized {
		v.Layout(v.x, v.y)
	}
}

func (v *SectionView[V]) labelNodes() []*LabelNode {
	return []*LabelNode{&v.Prev.Node, &v.Curr.Node, &v.Next.Node}
}
