package domain

// Store Model. Items point at a store through store_id only; the reference is
// not backed by a foreign key constraint, and deleting a store leaves its
// items in place.
type Store struct {
	StoreID uint   `gorm:"column:store_id;primaryKey"` // Primary key
	Name    string `gorm:"size:80;uniqueIndex"`        // Unique store name, the lookup key
}

// StoreRepresentation is the wire form of a store with its items resolved.
type StoreRepresentation struct {
	Name  string               `json:"name"`
	Items []ItemRepresentation `json:"items"`
}

// Representation builds the wire form from an already-loaded item set. The
// caller fetches the items with an explicit query; nothing is loaded lazily
// behind this boundary.
func (s *Store) Representation(items []Item) StoreRepresentation {
	reps := make([]ItemRepresentation, 0, len(items))
	for i := range items {
		reps = append(reps, items[i].Representation())
	}
	return StoreRepresentation{Name: s.Name, Items: reps}
}
