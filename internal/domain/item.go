package domain

// Item Model
type Item struct {
	ID      uint    `gorm:"primaryKey"`          // Primary key
	Name    string  `gorm:"size:80;uniqueIndex"` // Unique item name, the lookup key
	Price   float64 // Item price
	StoreID uint    `gorm:"index"` // Weak reference to the owning store
}

// ItemRepresentation is the wire form of an item. The capitalized "Store" key
// is kept for compatibility with existing clients.
type ItemRepresentation struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Store uint    `json:"Store"`
}

// Representation builds the wire form of the item.
func (i *Item) Representation() ItemRepresentation {
	return ItemRepresentation{Name: i.Name, Price: i.Price, Store: i.StoreID}
}
