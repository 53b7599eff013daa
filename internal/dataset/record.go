package dataset

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokchandra12/ZooPrediction/internal/config"
)

// Record is one enriched day of the canonical historical frame. Derived
// fields are always recomputed from the raw ticket/price fields, never
// accumulated, so re-deriving an enriched frame is a no-op.
type Record struct {
	Date time.Time `json:"date"`

	AdultTickets      int `json:"adult_tickets"`
	ChildTickets      int `json:"child_tickets"`
	ForeignerTickets  int `json:"foreigner_tickets"`
	CameraTickets     int `json:"camera_tickets"`
	HendCameraTickets int `json:"hend_camera_tickets"`

	AdultPrice      decimal.Decimal `json:"adult_price"`
	ChildPrice      decimal.Decimal `json:"child_price"`
	ForeignerPrice  decimal.Decimal `json:"foreigner_price"`
	CameraPrice     decimal.Decimal `json:"camera_price"`
	HendCameraPrice decimal.Decimal `json:"hend_camera_price"`

	AdultRevenue      decimal.Decimal `json:"adult_revenue"`
	ChildRevenue      decimal.Decimal `json:"child_revenue"`
	ForeignerRevenue  decimal.Decimal `json:"foreigner_revenue"`
	CameraRevenue     decimal.Decimal `json:"camera_revenue"`
	HendCameraRevenue decimal.Decimal `json:"hend_camera_revenue"`

	TotalVisitors int             `json:"total_visitors"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`

	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	DayOfWeek int    `json:"dayofweek"`
	IsWeekend bool   `json:"is_weekend"`
	DayName   string `json:"day_name"`
	MonthName string `json:"month_name"`

	MA7Visitors  float64         `json:"ma7_visitors"`
	MA7Revenue   decimal.Decimal `json:"ma7_revenue"`
	MA30Visitors float64         `json:"ma30_visitors"`
	MA30Revenue  decimal.Decimal `json:"ma30_revenue"`

	AdultPercentage float64 `json:"adult_percentage"`
	ChildPercentage float64 `json:"child_percentage"`

	// ReportedTotal is the verbatim source total, authoritative for
	// TotalRevenue when present. Not part of the canonical column set.
	ReportedTotal *decimal.Decimal `json:"-"`
}

// Defaults holds the fallback unit prices for categories the source never
// carries prices for.
type Defaults struct {
	Adult      decimal.Decimal
	Child      decimal.Decimal
	Foreigner  decimal.Decimal
	Camera     decimal.Decimal
	HendCamera decimal.Decimal
}

func DefaultPrices() Defaults {
	return Defaults{
		Adult:      decimal.NewFromFloat(25.00),
		Child:      decimal.NewFromFloat(15.00),
		Foreigner:  decimal.NewFromFloat(50.00),
		Camera:     decimal.NewFromFloat(10.00),
		HendCamera: decimal.NewFromFloat(20.00),
	}
}

func DefaultsFromConfig(cfg config.PriceConfig) Defaults {
	return Defaults{
		Adult:      decimal.NewFromFloat(cfg.Adult),
		Child:      decimal.NewFromFloat(cfg.Child),
		Foreigner:  decimal.NewFromFloat(cfg.Foreigner),
		Camera:     decimal.NewFromFloat(cfg.Camera),
		HendCamera: decimal.NewFromFloat(cfg.HendCamera),
	}
}
