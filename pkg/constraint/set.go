package constraint

// Set holds a field's constraints in declaration order, at most one per Kind.
type Set struct {
	specs []Spec
}

// NewSet builds a Set from specs in order.
func NewSet(specs ...Spec) Set {
	var s Set
	for _, spec := range specs {
		s.Put(spec)
	}
	return s
}

// Put adds spec. A spec of an already declared kind replaces the previous one
// in its original position.
func (s *Set) Put(spec Spec) {
	for i := range s.specs {
		if s.specs[i].Kind == spec.Kind {
			s.specs[i] = spec
			return
		}
	}
	s.specs = append(s.specs, spec)
}

// Remove drops the spec of kind k and reports whether it was present.
func (s *Set) Remove(k Kind) bool {
	for i := range s.specs {
		if s.specs[i].Kind == k {
			s.specs = append(s.specs[:i], s.specs[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the spec of kind k.
func (s Set) Get(k Kind) (Spec, bool) {
	for _, spec := range s.specs {
		if spec.Kind == k {
			return spec, true
		}
	}
	return Spec{}, false
}

// Has reports whether a spec of kind k is declared.
func (s Set) Has(k Kind) bool {
	_, ok := s.Get(k)
	return ok
}

// Specs returns a copy of the specs in declaration order.
func (s Set) Specs() []Spec {
	out := make([]Spec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Kinds returns the declared kinds in order.
func (s Set) Kinds() []Kind {
	out := make([]Kind, len(s.specs))
	for i, spec := range s.specs {
		out[i] = spec.Kind
	}
	return out
}

// Len returns the number of specs.
func (s Set) Len() int {
	return len(s.specs)
}
