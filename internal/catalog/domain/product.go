package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the product category as exposed by the API.
type Category string

const (
	CategoryWomen Category = "women"
	CategoryMen   Category = "men"
	CategoryKids  Category = "kids"
	CategoryOther Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWomen, CategoryMen, CategoryKids, CategoryOther:
		return true
	}
	return false
}

// SortOrder selects the client-side ordering applied after a fetch.
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

func (s SortOrder) Valid() bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Product is catalog data as served by the API. The client never creates
// or edits products. Price is a major-unit decimal, numeric on the wire.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    Category
	BrandID     int64
	ImageURL    string
	IsNew       bool
	Description string
	DateAdded   time.Time
}
