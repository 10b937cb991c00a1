package filter

import (
	"net/url"
	"slices"
	"strconv"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/utils"
)

// Query parameter names used by the product listing.
const (
	ParamCategory    = "category"
	ParamPrice       = "price"
	ParamMukhi       = "mukhi"
	ParamConsecrated = "consecrated"
)

// ParseQuery reads a State from listing query parameters.
// Set parameters may repeat or hold comma separated values.
func ParseQuery(q url.Values) (State, error) {
	var s State
	s.Category = parseSet(q[ParamCategory])
	s.Mukhi = parseSet(q[ParamMukhi])

	if raw := q.Get(ParamPrice); raw != "" {
		r, err := ParsePriceRange(raw)
		if err != nil {
			return State{}, err
		}
		s.PriceRange = &r
	}

	if raw := q.Get(ParamConsecrated); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return State{}, apperror.Wrap(apperror.InvalidInput, "Invalid input: consecrated must be true or false", err)
		}
		s.IsConsecrated = &v
	}
	return s, nil
}

// Query encodes s so that ParseQuery(s.Query()) reproduces it.
func (s State) Query() url.Values {
	q := url.Values{}
	for _, c := range s.Category {
		q.Add(ParamCategory, c)
	}
	if s.PriceRange != nil {
		q.Set(ParamPrice, s.PriceRange.String())
	}
	for _, m := range s.Mukhi {
		q.Add(ParamMukhi, m)
	}
	if s.IsConsecrated != nil {
		q.Set(ParamConsecrated, strconv.FormatBool(*s.IsConsecrated))
	}
	return q
}

// ProductFilter converts s to a repository query. An unbounded range leaves MaxPrice nil.
// The consecrated checkbox reads "Consecrated Items Only": only true constrains
// the listing, false (unchecked) is the same as no constraint.
func (s State) ProductFilter() domain.ProductFilter {
	f := domain.ProductFilter{
		Categories: slices.Clone(s.Category),
		Mukhi:      slices.Clone(s.Mukhi),
	}
	if s.PriceRange != nil {
		lo := s.PriceRange.Min
		f.MinPrice = &lo
		if !s.PriceRange.Unbounded() {
			hi := s.PriceRange.Max
			f.MaxPrice = &hi
		}
	}
	if s.IsConsecrated != nil && *s.IsConsecrated {
		v := true
		f.IsConsecrated = &v
	}
	return f
}

func parseSet(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range utils.SplitList(v) {
			if !slices.Contains(out, item) {
				out = append(out, item)
			}
		}
	}
	return out
}
