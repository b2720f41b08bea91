package server

import (
	"errors"
	"fmt"
	"html/template"
)

// ErrTargetNotFound is returned when a chart is rendered into a slot the page does not declare.
var ErrTargetNotFound = errors.New("target element not found")

// Fragment is a rendered chart ready to be placed into a page.
type Fragment struct {
	Element template.HTML
	Script  template.HTML
	Assets  []string
}

// Surface is the set of named drawable slots a page exposes to charts.
// A Surface belongs to a single request and is not safe for concurrent use.
type Surface struct {
	order []string
	slots map[string]*Fragment
}

func NewSurface(ids ...string) *Surface {
	s := &Surface{slots: make(map[string]*Fragment, len(ids))}
	for _, id := range ids {
		if _, ok := s.slots[id]; ok {
			continue
		}
		s.order = append(s.order, id)
		s.slots[id] = nil
	}
	return s
}

// Attach places a fragment into the slot named id, replacing any previous chart.
func (s *Surface) Attach(id string, f Fragment) error {
	if _, ok := s.slots[id]; !ok {
		return fmt.Errorf("%w: %q", ErrTargetNotFound, id)
	}
	s.slots[id] = &f
	return nil
}

// Has reports whether the surface declares a slot named id.
func (s *Surface) Has(id string) bool {
	_, ok := s.slots[id]
	return ok
}

// Slot returns the fragment attached to id, or an empty fragment.
func (s *Surface) Slot(id string) Fragment {
	if f := s.slots[id]; f != nil {
		return *f
	}
	return Fragment{}
}

// Assets lists the scripts needed by every attached chart, without duplicates.
func (s *Surface) Assets() []string {
	seen := make(map[string]bool)
	var assets []string
	for _, id := range s.order {
		f := s.slots[id]
		if f == nil {
			continue
		}
		for _, a := range f.Assets {
			if seen[a] {
				continue
			}
			seen[a] = true
			assets = append(assets, a)
		}
	}
	return assets
}
