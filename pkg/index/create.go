package index

// CreateUnique registers a new Unique index on r. It fails if name is
// already registered.
//
// CreateUnique is a free function rather than a method on Registry because
// Go does not allow a method to introduce type parameters beyond its
// receiver's: K varies per index within the same registry, so each
// index's key type can only be fixed at the call site.
func CreateUnique[V any, ID comparable, K comparable](r *Registry[V, ID], name string, project Projector[V, K], opts ...Option) (*UniqueIndex[V, K, ID], error) {
	idx := NewUnique[V, K, ID](name, project, opts...)
	if err := r.register(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// CreateMulti registers a new Multi index on r. It fails if name is
// already registered.
func CreateMulti[V any, ID comparable, K comparable](r *Registry[V, ID], name string, project Projector[V, K], opts ...Option) (*MultiIndex[V, K, ID], error) {
	idx := NewMulti[V, K, ID](name, project, opts...)
	if err := r.register(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// LookupUnique retrieves a previously registered Unique index by name,
// failing with ErrIndexNotFound or ErrIndexKindMismatch as appropriate.
func LookupUnique[V any, ID comparable, K comparable](r *Registry[V, ID], name string) (*UniqueIndex[V, K, ID], error) {
	raw, ok := r.Lookup(name)
	if !ok {
		return nil, ErrIndexNotFound
	}
	u, ok := raw.(*UniqueIndex[V, K, ID])
	if !ok {
		return nil, ErrIndexKindMismatch
	}
	return u, nil
}

// LookupMulti retrieves a previously registered Multi index by name,
// failing with ErrIndexNotFound or ErrIndexKindMismatch as appropriate.
func LookupMulti[V any, ID comparable, K comparable](r *Registry[V, ID], name string) (*MultiIndex[V, K, ID], error) {
	raw, ok := r.Lookup(name)
	if !ok {
		return nil, ErrIndexNotFound
	}
	m, ok := raw.(*MultiIndex[V, K, ID])
	if !ok {
		return nil, ErrIndexKindMismatch
	}
	return m, nil
}
