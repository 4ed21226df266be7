package models

import "time"

const (
	EquipmentStatusAvailable   = "available"
	EquipmentStatusRented      = "rented"
	EquipmentStatusMaintenance = "maintenance"
)

// Product is a physical retail item tracked by stock quantity.
type Product struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Price         int64      `json:"price_cents"`
	SalePrice     *int64     `json:"sale_price_cents,omitempty"`
	SaleStartDate *time.Time `json:"sale_start_date,omitempty"`
	SaleEndDate   *time.Time `json:"sale_end_date,omitempty"`
	StockQuantity int        `json:"stock_quantity"`
	Active        bool       `json:"active"`
}

// EffectivePrice returns the sale price when now falls inside the sale
// window (inclusive on both ends), otherwise the list price.
func (p Product) EffectivePrice(now time.Time) int64 {
	if p.SalePrice == nil || p.SaleStartDate == nil || p.SaleEndDate == nil {
		return p.Price
	}
	if now.Before(*p.SaleStartDate) || now.After(*p.SaleEndDate) {
		return p.Price
	}
	return *p.SalePrice
}

// Equipment is a rentable item charged by the day.
type Equipment struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	DailyRate int64  `json:"daily_rate_cents"`
	Status    string `json:"status"`
}

// Trip is a bookable guided tour priced per participant.
type Trip struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Price  int64  `json:"price_cents"`
	Active bool   `json:"active"`
}
