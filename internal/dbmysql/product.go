package dbmysql

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID     int64           `gorm:"primaryKey;autoIncrement;column:product_id" json:"id"`
	Name          string          `gorm:"column:name;size:200;not null;index" json:"name"`
	Description   string          `gorm:"column:description;type:text;not null" json:"description"`
	Price         decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	ImageURL      string          `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	Category      string          `gorm:"column:category;size:100;not null;index" json:"category"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	Active        bool            `gorm:"column:active;not null;default:true;index" json:"active"`
	Digital       bool            `gorm:"column:digital;not null;default:false" json:"digital"`

	// New-arrival window. Without an explicit FeaturedUntil, products count
	// as new for 30 days after creation.
	NewArrival    bool       `gorm:"column:new_arrival;not null;default:true" json:"new_arrival"`
	FeaturedUntil *time.Time `gorm:"column:featured_until" json:"featured_until,omitempty"`

	// Seasonal availability: either an explicit start/end window or a
	// season type resolved against the current month.
	Seasonal      bool       `gorm:"column:seasonal;not null;default:false" json:"seasonal"`
	SeasonType    string     `gorm:"column:season_type;size:50" json:"season_type,omitempty"`
	SeasonalStart *time.Time `gorm:"column:seasonal_start" json:"seasonal_start,omitempty"`
	SeasonalEnd   *time.Time `gorm:"column:seasonal_end" json:"seasonal_end,omitempty"`

	SellerID  uint64    `gorm:"column:seller_id;not null;index" json:"seller_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

var seasonMonths = map[string][]time.Month{
	"spring":         {time.March, time.April, time.May},
	"summer":         {time.June, time.July, time.August},
	"fall":           {time.September, time.October, time.November},
	"autumn":         {time.September, time.October, time.November},
	"winter":         {time.December, time.January, time.February},
	"holiday":        {time.November, time.December, time.January},
	"christmas":      {time.November, time.December},
	"valentine":      {time.January, time.February},
	"easter":         {time.March, time.April},
	"halloween":      {time.October},
	"thanksgiving":   {time.November},
	"back_to_school": {time.July, time.August, time.September},
	"new_year":       {time.December, time.January},
}

// IsNewArrival reports whether the product still counts as new at the given
// time.
func (p *Product) IsNewArrival(now time.Time) bool {
	if !p.NewArrival {
		return false
	}
	if p.FeaturedUntil != nil {
		return !now.After(*p.FeaturedUntil)
	}
	return now.Sub(p.CreatedAt) <= 30*24*time.Hour
}

// InSeason reports whether the product is currently purchasable with respect
// to its seasonal window. Non-seasonal products are always in season.
func (p *Product) InSeason(now time.Time) bool {
	if !p.Seasonal {
		return true
	}
	if p.SeasonalStart != nil && p.SeasonalEnd != nil {
		// Cross-year windows (e.g. December through February) wrap around.
		if p.SeasonalStart.Year() == p.SeasonalEnd.Year() {
			return !now.Before(*p.SeasonalStart) && !now.After(*p.SeasonalEnd)
		}
		return !now.Before(*p.SeasonalStart) || !now.After(*p.SeasonalEnd)
	}
	if p.SeasonType != "" {
		months, ok := seasonMonths[p.SeasonType]
		if !ok {
			return true
		}
		for _, m := range months {
			if now.Month() == m {
				return true
			}
		}
		return false
	}
	return true
}
