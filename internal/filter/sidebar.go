package filter

import (
	"slices"
	"strconv"
)

// Sidebar renders a State snapshot and reports interaction as patches.
// It never applies its own patches: the owner applies them and calls Update.
type Sidebar struct {
	state       State
	onChange    func(Patch)
	categories  []string
	mukhi       []string
	priceRanges []PriceOption
}

type SidebarOption func(*Sidebar)

// WithCategories replaces the preset category list. An empty list keeps the presets.
func WithCategories(categories []string) SidebarOption {
	return func(s *Sidebar) {
		if len(categories) > 0 {
			s.categories = slices.Clone(categories)
		}
	}
}

// WithMukhi enables the mukhi section with the given choices.
func WithMukhi(mukhi []string) SidebarOption {
	return func(s *Sidebar) {
		s.mukhi = slices.Clone(mukhi)
	}
}

func WithPriceRanges(ranges []PriceOption) SidebarOption {
	return func(s *Sidebar) {
		if len(ranges) > 0 {
			s.priceRanges = slices.Clone(ranges)
		}
	}
}

// NewSidebar builds a sidebar over state. onChange may be nil for render-only use.
func NewSidebar(state State, onChange func(Patch), opts ...SidebarOption) *Sidebar {
	s := &Sidebar{
		state:       state.Clone(),
		onChange:    onChange,
		categories:  Categories,
		priceRanges: PriceRanges,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update replaces the snapshot after the owner applied a patch.
func (s *Sidebar) Update(state State) {
	s.state = state.Clone()
}

func (s *Sidebar) State() State {
	return s.state.Clone()
}

// ToggleCategory adds or removes category. Checking a category that is
// already selected, or unchecking one that is not, emits nothing.
func (s *Sidebar) ToggleCategory(category string, c Check) {
	if next, changed := toggle(s.state.Category, category, c); changed {
		s.emit(CategoryPatch(next))
	}
}

func (s *Sidebar) ToggleMukhi(mukhi string, c Check) {
	if next, changed := toggle(s.state.Mukhi, mukhi, c); changed {
		s.emit(MukhiPatch(next))
	}
}

// SelectPriceRange replaces the active range when checked. Unchecking the
// active range clears it; unchecking any other range is a no-op.
func (s *Sidebar) SelectPriceRange(r PriceRange, c Check) {
	if c == Checked {
		s.emit(PriceRangePatch(&r))
		return
	}
	if s.state.Selected(r) {
		s.emit(PriceRangePatch(nil))
	}
}

func (s *Sidebar) ToggleConsecrated(c Check) {
	s.emit(ConsecratedPatch(bool(c)))
}

// HandleConsecratedSignal forwards definite checkbox signals and drops the rest.
func (s *Sidebar) HandleConsecratedSignal(sig Signal) {
	if c, ok := sig.Decide(); ok {
		s.ToggleConsecrated(c)
	}
}

func (s *Sidebar) emit(p Patch) {
	if s.onChange != nil {
		s.onChange(p)
	}
}

func toggle(set []string, value string, c Check) ([]string, bool) {
	present := slices.Contains(set, value)
	switch {
	case c == Checked && !present:
		next := make([]string, 0, len(set)+1)
		return append(append(next, set...), value), true
	case c == Unchecked && present:
		next := make([]string, 0, len(set))
		for _, v := range set {
			if v != value {
				next = append(next, v)
			}
		}
		return next, true
	}
	return set, false
}

// View is the render model of the sidebar.
type View struct {
	Sections []Section `json:"sections"`
}

type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is one checkbox. Value is what the listing query expects for it.
type Item struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

func (s *Sidebar) View() View {
	v := View{Sections: make([]Section, 0, 4)}

	cats := Section{Key: "category", Title: "Category"}
	for _, c := range s.categories {
		cats.Items = append(cats.Items, Item{
			ID:      "category-" + c,
			Label:   c,
			Value:   c,
			Checked: s.state.HasCategory(c),
		})
	}
	v.Sections = append(v.Sections, cats)

	price := Section{Key: "price", Title: "Price"}
	for i, opt := range s.priceRanges {
		price.Items = append(price.Items, Item{
			ID:      "price-" + strconv.Itoa(i),
			Label:   opt.Label,
			Value:   opt.Range.String(),
			Checked: s.state.Selected(opt.Range),
		})
	}
	v.Sections = append(v.Sections, price)

	if len(s.mukhi) > 0 {
		mk := Section{Key: "mukhi", Title: "Mukhi(Face)"}
		for _, m := range s.mukhi {
			mk.Items = append(mk.Items, Item{
				ID:      "mukhi-" + m,
				Label:   m,
				Value:   m,
				Checked: s.state.HasMukhi(m),
			})
		}
		v.Sections = append(v.Sections, mk)
	}

	v.Sections = append(v.Sections, Section{
		Key:   "consecrated",
		Title: "Consecrated",
		Items: []Item{{
			ID:      "consecrated",
			Label:   "Consecrated Items Only",
			Value:   "true",
			Checked: s.state.IsConsecrated != nil && *s.state.IsConsecrated,
		}},
	})
	return v
}
