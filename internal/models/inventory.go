package models

import "time"

// InventoryItem is a supply consumed by remediations.
type InventoryItem struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Description    string    `json:"description" yaml:"description"`
	Quantity       float64   `json:"quantity" yaml:"quantity"`
	Category       string    `json:"category" yaml:"category"`
	Location       string    `json:"location" yaml:"location"`
	ExpirationDate *Date     `json:"expirationDate,omitempty" yaml:"expirationDate,omitempty"`
	Supplier       string    `json:"supplier" yaml:"supplier"`
	UnitCost       float64   `json:"unitCost" yaml:"unitCost"`
	MinimumStock   float64   `json:"minimumStock" yaml:"minimumStock"`
	LastUpdated    time.Time `json:"lastUpdated" yaml:"lastUpdated"`
}

// Clone returns a deep copy.
func (i InventoryItem) Clone() InventoryItem {
	i.ExpirationDate = cloneDate(i.ExpirationDate)
	return i
}
