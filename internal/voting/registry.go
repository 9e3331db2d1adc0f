package voting

import (
	"fmt"
	"slices"
)

// Systems lists the registered system names in their canonical order.
var Systems = []string{"plurality", "approval", "borda", "hare"}

// Registry maps system names to rule constructors. Rules that need an
// interner share the registry's.
type Registry struct {
	rules    map[string]func() Rule
	interner *Interner
}

func NewRegistry(in *Interner) *Registry {
	if in == nil {
		in = NewInterner()
	}
	r := &Registry{
		rules:    make(map[string]func() Rule),
		interner: in,
	}

	r.rules["plurality"] = func() Rule { return NewPlurality() }
	r.rules["approval"] = func() Rule { return NewApproval() }
	r.rules["borda"] = func() Rule { return NewBorda() }
	r.rules["hare"] = func() Rule { return NewInstantRunoff(r.interner) }

	return r
}

func (r *Registry) Get(name string) (Rule, error) {
	fn, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, name)
	}
	return fn(), nil
}

func (r *Registry) Interner() *Interner { return r.interner }

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns a one-line summary of a system, or "" if unknown.
func Describe(name string) string {
	switch name {
	case "plurality":
		return "closest candidate takes the full weight"
	case "approval":
		return "quadratic approval from closest to farthest"
	case "borda":
		return "rank scores n..1 by distance"
	case "hare":
		return "instant runoff, eliminate the weakest until one remains"
	}
	return ""
}
