package entity

import "github.com/shopspring/decimal"

type Hotel struct {
	Base
	Address string `db:"address"`
	Contact int64  `db:"contact"`
}

type Category struct {
	Base
	HotelID     int64           `db:"hotel_id"`
	Description string          `db:"description"`
	Charges     decimal.Decimal `db:"charges"` // per night
}

// Offer is a flat per-night discount on a category.
type Offer struct {
	Base
	HotelID    int64           `db:"hotel_id"`
	CategoryID int64           `db:"category_id"`
	Value      decimal.Decimal `db:"value"`
}
