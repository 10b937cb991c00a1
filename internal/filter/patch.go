package filter

import "github.com/goccy/go-json"

// Field identifies one member of State.
type Field uint8

const (
	FieldCategory Field = 1 << iota
	FieldPriceRange
	FieldMukhi
	FieldConsecrated
)

// Patch is a partial State. Only fields recorded in Fields are meant to
// change, so a present nil PriceRange clears the range while an absent one
// leaves it alone.
type Patch struct {
	Fields        Field
	Category      []string
	PriceRange    *PriceRange
	Mukhi         []string
	IsConsecrated *bool
}

func (p Patch) Has(f Field) bool {
	return p.Fields&f != 0
}

func (p Patch) Empty() bool {
	return p.Fields == 0
}

func CategoryPatch(categories []string) Patch {
	return Patch{Fields: FieldCategory, Category: categories}
}

// PriceRangePatch replaces the price range. A nil r clears it.
func PriceRangePatch(r *PriceRange) Patch {
	return Patch{Fields: FieldPriceRange, PriceRange: r}
}

func MukhiPatch(mukhi []string) Patch {
	return Patch{Fields: FieldMukhi, Mukhi: mukhi}
}

func ConsecratedPatch(v bool) Patch {
	return Patch{Fields: FieldConsecrated, IsConsecrated: &v}
}

// MarshalJSON writes only the present fields.
func (p Patch) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 4)
	if p.Has(FieldCategory) {
		out["category"] = nonNil(p.Category)
	}
	if p.Has(FieldPriceRange) {
		out["priceRange"] = p.PriceRange
	}
	if p.Has(FieldMukhi) {
		out["mukhi"] = nonNil(p.Mukhi)
	}
	if p.Has(FieldConsecrated) {
		out["isConsecrated"] = p.IsConsecrated
	}
	return json.Marshal(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
