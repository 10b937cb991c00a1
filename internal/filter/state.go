// Package filter holds the product listing filter state and the sidebar
// contract that turns checkbox interaction into state patches.
package filter

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"storefront-backend/pkg/apperror"
)

// PriceRange is a closed price interval. Max is +Inf for open-ended ranges.
// On the wire it is a two element tuple, with null standing in for +Inf.
type PriceRange struct {
	Min float64
	Max float64
}

// Unbounded reports whether the range has no upper limit.
func (r PriceRange) Unbounded() bool {
	return math.IsInf(r.Max, 1)
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Validate checks the bounds make sense for a product query.
func (r PriceRange) Validate() error {
	switch {
	case math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0):
		return apperror.NewInvalidInput("Invalid input: price range bounds must be numbers")
	case r.Min < 0:
		return apperror.NewInvalidInput("Invalid input: price range minimum must not be negative")
	case r.Min > r.Max:
		return apperror.NewInvalidInput("Invalid input: price range minimum must not exceed maximum")
	}
	return nil
}

// String renders the range as "min-max", or "min-" when unbounded.
func (r PriceRange) String() string {
	lo := strconv.FormatFloat(r.Min, 'f', -1, 64)
	if r.Unbounded() {
		return lo + "-"
	}
	return lo + "-" + strconv.FormatFloat(r.Max, 'f', -1, 64)
}

// ParsePriceRange is the inverse of PriceRange.String.
func ParsePriceRange(s string) (PriceRange, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || lo == "" {
		return PriceRange{}, apperror.NewInvalidInput("Invalid input: price must look like min-max")
	}
	lower, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return PriceRange{}, apperror.Wrap(apperror.InvalidInput, "Invalid input: price minimum is not a number", err)
	}
	upper := math.Inf(1)
	if hi != "" {
		if upper, err = strconv.ParseFloat(hi, 64); err != nil {
			return PriceRange{}, apperror.Wrap(apperror.InvalidInput, "Invalid input: price maximum is not a number", err)
		}
	}
	r := PriceRange{Min: lower, Max: upper}
	if err := r.Validate(); err != nil {
		return PriceRange{}, err
	}
	return r, nil
}

func (r PriceRange) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 24)
	buf = append(buf, '[')
	buf = strconv.AppendFloat(buf, r.Min, 'f', -1, 64)
	buf = append(buf, ',')
	if r.Unbounded() {
		buf = append(buf, "null"...)
	} else {
		buf = strconv.AppendFloat(buf, r.Max, 'f', -1, 64)
	}
	return append(buf, ']'), nil
}

func (r *PriceRange) UnmarshalJSON(data []byte) error {
	var tuple []*float64
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 || tuple[0] == nil {
		return errors.New("price range must be [min, max]")
	}
	r.Min = *tuple[0]
	r.Max = math.Inf(1)
	if tuple[1] != nil {
		r.Max = *tuple[1]
	}
	return nil
}

// State is a snapshot of the active listing constraints.
// Empty sets and nil pointers mean "no constraint".
type State struct {
	Category      []string    `json:"category"`
	PriceRange    *PriceRange `json:"priceRange"`
	Mukhi         []string    `json:"mukhi"`
	IsConsecrated *bool       `json:"isConsecrated"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Category: slices.Clone(s.Category),
		Mukhi:    slices.Clone(s.Mukhi),
	}
	if s.PriceRange != nil {
		r := *s.PriceRange
		out.PriceRange = &r
	}
	if s.IsConsecrated != nil {
		v := *s.IsConsecrated
		out.IsConsecrated = &v
	}
	return out
}

// Empty reports whether s constrains nothing.
func (s State) Empty() bool {
	return len(s.Category) == 0 && s.PriceRange == nil && len(s.Mukhi) == 0 && s.IsConsecrated == nil
}

func (s State) HasCategory(category string) bool {
	return slices.Contains(s.Category, category)
}

func (s State) HasMukhi(mukhi string) bool {
	return slices.Contains(s.Mukhi, mukhi)
}

// Selected reports whether r is the active price range.
func (s State) Selected(r PriceRange) bool {
	return s.PriceRange != nil && *s.PriceRange == r
}

// Apply returns s with the fields present in p replaced. s is not modified.
func (s State) Apply(p Patch) State {
	out := s.Clone()
	if p.Has(FieldCategory) {
		out.Category = slices.Clone(p.Category)
	}
	if p.Has(FieldPriceRange) {
		out.PriceRange = nil
		if p.PriceRange != nil {
			r := *p.PriceRange
			out.PriceRange = &r
		}
	}
	if p.Has(FieldMukhi) {
		out.Mukhi = slices.Clone(p.Mukhi)
	}
	if p.Has(FieldConsecrated) {
		out.IsConsecrated = nil
		if p.IsConsecrated != nil {
			v := *p.IsConsecrated
			out.IsConsecrated = &v
		}
	}
	return out
}
