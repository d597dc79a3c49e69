package cayennelpp

// Registry holds the data types known to a decoder, keyed by type id.
// A new registry is pre-populated with the 12 standard Cayenne LPP v1 types,
// which are permanent; custom types can be added and removed at will.
//
// Two registries share no state. A registry is not safe for concurrent
// mutation; decoding against a registry that is no longer being mutated is
// safe from multiple goroutines.
type Registry struct {
	dataTypes map[uint8]TypeDescriptor
}

// NewRegistry creates a new Registry seeded with the standard data types.
func NewRegistry() *Registry {
	r := Registry{
		dataTypes: make(map[uint8]TypeDescriptor),
	}
	for _, dt := range standardTypeDescriptors() {
		r.dataTypes[dt.TypeID] = dt
	}
	return &r
}

// Lookup returns the descriptor registered for the given type id.
func (r *Registry) Lookup(typeID uint8) (TypeDescriptor, bool) {
	dt, ok := r.dataTypes[typeID]
	return dt, ok
}

// Contains returns true when a descriptor is registered for the given type id.
func (r *Registry) Contains(typeID uint8) bool {
	_, ok := r.dataTypes[typeID]
	return ok
}

// RegisterCustom registers a custom data type. It returns false without
// mutating the registry when the type id is already taken (standard ids can
// never be shadowed), when size is zero, or when fn is nil.
func (r *Registry) RegisterCustom(typeID uint8, name string, size int, fn DecodeFunc) bool {
	if _, ok := r.dataTypes[typeID]; ok {
		return false
	}
	if size <= 0 {
		return false
	}
	if fn == nil {
		return false
	}

	r.dataTypes[typeID] = TypeDescriptor{
		TypeID:     typeID,
		Name:       name,
		Size:       size,
		Standard:   false,
		DecodeFunc: fn,
	}
	return true
}

// UnregisterCustom removes a previously registered custom data type. It
// returns false when the type id is not registered or refers to a standard
// type. Standard types can not be removed.
func (r *Registry) UnregisterCustom(typeID uint8) bool {
	dt, ok := r.dataTypes[typeID]
	if !ok {
		return false
	}
	if dt.Standard {
		return false
	}

	delete(r.dataTypes, typeID)
	return true
}
