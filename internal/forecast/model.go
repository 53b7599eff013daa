package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	appconfig "github.com/lokchandra12/ZooPrediction/internal/config"
	"github.com/lokchandra12/ZooPrediction/internal/dataset"
)

// Config holds the fitting knobs. The prior scales are deliberately stiffer
// than the customary defaults: less short-term seasonal wiggle, smoother
// trend lines without sharp drops.
type Config struct {
	YearlyThreshold       int
	SeasonalityPriorScale float64
	ChangepointPriorScale float64
	Changepoints          int
	HolidayCountry        string
}

func DefaultConfig() Config {
	return Config{
		YearlyThreshold:       360,
		SeasonalityPriorScale: 0.1,
		ChangepointPriorScale: 0.05,
		Changepoints:          25,
		HolidayCountry:        "US",
	}
}

func ConfigFromApp(cfg appconfig.ForecastConfig) Config {
	return Config{
		YearlyThreshold:       cfg.YearlyThreshold,
		SeasonalityPriorScale: cfg.SeasonalityPriorScale,
		ChangepointPriorScale: cfg.ChangepointPriorScale,
		Changepoints:          cfg.Changepoints,
		HolidayCountry:        cfg.HolidayCountry,
	}
}

// ModelSet is one fitted model per target series plus the adult-share trend
// and the carry-forward prices. Built once from a historical frame, immutable
// afterwards, discarded wholesale when new data is loaded.
type ModelSet struct {
	totalVisitors *seasonalModel
	adultTickets  *seasonalModel
	childTickets  *seasonalModel
	adultShare    trendModel

	lastAdultPrice decimal.Decimal
	lastChildPrice decimal.Decimal

	lastDate   time.Time
	historyLen int
}

// Fit trains the model set on an enriched historical frame.
func Fit(records []dataset.Record, cfg Config) (*ModelSet, error) {
	n := len(records)
	if n < 2 {
		return nil, &InsufficientDataError{Series: "total_visitors", Observations: n}
	}

	dates := make([]time.Time, n)
	total := make([]float64, n)
	adult := make([]float64, n)
	child := make([]float64, n)
	share := make([]float64, n)
	for i, r := range records {
		dates[i] = r.Date
		total[i] = float64(r.TotalVisitors)
		adult[i] = float64(r.AdultTickets)
		child[i] = float64(r.ChildTickets)
		share[i] = r.AdultPercentage
	}

	ms := &ModelSet{
		lastAdultPrice: records[n-1].AdultPrice,
		lastChildPrice: records[n-1].ChildPrice,
		lastDate:       records[n-1].Date,
		historyLen:     n,
	}

	var err error
	if ms.totalVisitors, err = fitSeasonal("total_visitors", dates, total, cfg); err != nil {
		return nil, err
	}
	if ms.adultTickets, err = fitSeasonal("adult_tickets", dates, adult, cfg); err != nil {
		return nil, err
	}
	if ms.childTickets, err = fitSeasonal("child_tickets", dates, child, cfg); err != nil {
		return nil, err
	}
	if ms.adultShare, err = fitTrend("adult_percentage", share); err != nil {
		return nil, err
	}

	return ms, nil
}

// YearlySeasonality reports whether the count models carry a yearly
// component (all three share the same decision).
func (m *ModelSet) YearlySeasonality() bool {
	return m.totalVisitors.yearly
}

func (m *ModelSet) LastDate() time.Time { return m.lastDate }

func (m *ModelSet) HistoryLen() int { return m.historyLen }
