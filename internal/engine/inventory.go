package engine

import (
	"strings"
	"time"

	"github.com/ajitpratap0/riskready/internal/models"
)

const (
	// ExpiringWithinDays is the window in which an expiration date is flagged.
	ExpiringWithinDays = 30

	// MediumStockFactor is the multiple of minimum stock below which stock
	// is considered medium.
	MediumStockFactor = 1.5
)

// Stock labels.
const (
	StockLow      = "Low Stock"
	StockMedium   = "Medium Stock"
	StockGood     = "Good Stock"
	StockNotFound = "Not Found"
)

// StockLevel is a stock sufficiency label with its tag.
type StockLevel struct {
	Label string `json:"label"`
	Tag   Tag    `json:"tag"`
}

// StockStatus classifies stock sufficiency from quantity and minimum stock.
func StockStatus(quantity, minimum float64) StockLevel {
	switch {
	case quantity <= minimum:
		return StockLevel{Label: StockLow, Tag: TagError}
	case quantity <= minimum*MediumStockFactor:
		return StockLevel{Label: StockMedium, Tag: TagWarning}
	default:
		return StockLevel{Label: StockGood, Tag: TagSuccess}
	}
}

// ItemStock classifies an inventory item.
func ItemStock(item *models.InventoryItem) StockLevel {
	return StockStatus(item.Quantity, item.MinimumStock)
}

// InventoryStatus classifies the item with the given id, as shown next to a
// remediation's required inventory. A dangling id yields "Not Found".
func InventoryStatus(ds *models.Dataset, itemID string) StockLevel {
	item, ok := ds.InventoryByID(itemID)
	if !ok {
		return StockLevel{Label: StockNotFound, Tag: TagError}
	}
	return ItemStock(&item)
}

// DaysUntil returns the fractional number of days from now to midnight of
// d in now's location. The result is negative when d is in the past.
func DaysUntil(d models.Date, now time.Time) float64 {
	return d.At(now.Location()).Sub(now).Hours() / 24
}

// PastDue reports whether d is set and already began before now, reading
// d as a calendar date in now's location.
func PastDue(d *models.Date, now time.Time) bool {
	return models.IsSet(d) && d.At(now.Location()).Before(now)
}

// ExpiringSoon reports whether exp is set and at most ExpiringWithinDays
// away. Dates already in the past are flagged too.
func ExpiringSoon(exp *models.Date, now time.Time) bool {
	if !models.IsSet(exp) {
		return false
	}
	return DaysUntil(*exp, now) <= ExpiringWithinDays
}

// ItemExpiringSoon reports whether the item's expiration date is near.
func ItemExpiringSoon(item *models.InventoryItem, now time.Time) bool {
	return ExpiringSoon(item.ExpirationDate, now)
}

// SearchInventory returns items whose name, category or location contains
// term, ignoring case. An empty term matches everything.
func SearchInventory(items []models.InventoryItem, term string) []models.InventoryItem {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.InventoryItem, 0, len(items))
	for i := range items {
		it := &items[i]
		if term == "" ||
			strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.Category), term) ||
			strings.Contains(strings.ToLower(it.Location), term) {
			out = append(out, *it)
		}
	}
	return out
}

// InventoryRow is an item annotated with its derived status.
type InventoryRow struct {
	Item         models.InventoryItem `json:"item"`
	Stock        StockLevel           `json:"stock"`
	ExpiringSoon bool                 `json:"expiring_soon"`
	TotalValue   float64              `json:"total_value"`
}

// InventoryRows annotates every item with stock and expiration status.
func InventoryRows(items []models.InventoryItem, now time.Time) []InventoryRow {
	rows := make([]InventoryRow, 0, len(items))
	for i := range items {
		it := &items[i]
		rows = append(rows, InventoryRow{
			Item:         *it,
			Stock:        ItemStock(it),
			ExpiringSoon: ItemExpiringSoon(it, now),
			TotalValue:   it.Quantity * it.UnitCost,
		})
	}
	return rows
}

// InventoryTotals summarizes the inventory.
type InventoryTotals struct {
	Items      int     `json:"items"`
	LowStock   int     `json:"low_stock"`
	Medium     int     `json:"medium_stock"`
	Good       int     `json:"good_stock"`
	Expiring   int     `json:"expiring_soon"`
	TotalValue float64 `json:"total_value"`
}

// InventorySummary counts items per stock level and expiration flag and
// sums quantity times unit cost.
func InventorySummary(items []models.InventoryItem, now time.Time) InventoryTotals {
	var t InventoryTotals
	for i := range items {
		it := &items[i]
		t.Items++
		switch ItemStock(it).Label {
		case StockLow:
			t.LowStock++
		case StockMedium:
			t.Medium++
		default:
			t.Good++
		}
		if ItemExpiringSoon(it, now) {
			t.Expiring++
		}
		t.TotalValue += it.Quantity * it.UnitCost
	}
	return t
}
