package forecast

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

const (
	yearlyOrder        = 10
	yearDays           = 365.25
	holidayPriorScale  = 10.0
	unpenalizedEpsilon = 1e-8
)

// seasonalModel is an additive attendance model: piecewise-linear trend with
// damped changepoints, weekday offsets, optional yearly Fourier terms and
// per-holiday effects. Fitting is ridge-regularized least squares where each
// coefficient group's penalty is the reciprocal of its prior scale, so a
// smaller prior scale means a stiffer, smoother fit.
type seasonalModel struct {
	origin       time.Time
	coef         []float64
	changepoints []float64
	yearly       bool
	holidays     bool
}

func fitSeasonal(name string, dates []time.Time, y []float64, cfg Config) (*seasonalModel, error) {
	n := len(dates)
	if n < 2 {
		return nil, &InsufficientDataError{Series: name, Observations: n}
	}

	m := &seasonalModel{
		origin:   dates[0],
		yearly:   n > cfg.YearlyThreshold,
		holidays: cfg.HolidayCountry == "US",
	}

	ts := make([]float64, n)
	for i, d := range dates {
		ts[i] = m.dayIndex(d)
	}
	m.changepoints = placeChangepoints(ts[n-1], cfg.Changepoints, n)

	p := m.featureCount()
	penalties := m.penalties(cfg)

	// Augmented least squares: penalty rows sqrt(lambda) under the design
	// matrix give the ridge solution through a single QR solve.
	rows := n + p
	x := mat.NewDense(rows, p, nil)
	b := mat.NewDense(rows, 1, nil)
	for i := 0; i < n; i++ {
		x.SetRow(i, m.features(ts[i], dates[i]))
		b.Set(i, 0, y[i])
	}
	for j := 0; j < p; j++ {
		x.Set(n+j, j, math.Sqrt(penalties[j]))
	}

	var beta mat.Dense
	if err := beta.Solve(x, b); err != nil {
		return nil, fmt.Errorf("fit %s: %w", name, err)
	}

	m.coef = make([]float64, p)
	for j := 0; j < p; j++ {
		m.coef[j] = beta.At(j, 0)
	}
	return m, nil
}

func (m *seasonalModel) dayIndex(d time.Time) float64 {
	return d.Sub(m.origin).Hours() / 24.0
}

// predict returns the raw point forecast for a date, before smoothing,
// rounding or clamping.
func (m *seasonalModel) predict(d time.Time) float64 {
	feats := m.features(m.dayIndex(d), d)
	sum := 0.0
	for j, f := range feats {
		sum += f * m.coef[j]
	}
	return sum
}

func (m *seasonalModel) featureCount() int {
	p := 2 + len(m.changepoints) + 6
	if m.yearly {
		p += 2 * yearlyOrder
	}
	if m.holidays {
		p += len(usHolidayNames)
	}
	return p
}

func (m *seasonalModel) features(t float64, d time.Time) []float64 {
	feats := make([]float64, 0, m.featureCount())
	feats = append(feats, 1, t)

	for _, cp := range m.changepoints {
		if t > cp {
			feats = append(feats, t-cp)
		} else {
			feats = append(feats, 0)
		}
	}

	// Weekday offsets, Sunday as the baseline.
	dow := (int(d.Weekday()) + 6) % 7
	for i := 0; i < 6; i++ {
		if dow == i {
			feats = append(feats, 1)
		} else {
			feats = append(feats, 0)
		}
	}

	if m.yearly {
		for k := 1; k <= yearlyOrder; k++ {
			phase := 2 * math.Pi * float64(k) * t / yearDays
			feats = append(feats, math.Sin(phase), math.Cos(phase))
		}
	}

	if m.holidays {
		name := usHoliday(d)
		for _, h := range usHolidayNames {
			if name == h {
				feats = append(feats, 1)
			} else {
				feats = append(feats, 0)
			}
		}
	}

	return feats
}

func (m *seasonalModel) penalties(cfg Config) []float64 {
	seasonal := priorPenalty(cfg.SeasonalityPriorScale)
	changepoint := priorPenalty(cfg.ChangepointPriorScale)
	holiday := priorPenalty(holidayPriorScale)

	pen := make([]float64, 0, m.featureCount())
	pen = append(pen, unpenalizedEpsilon, unpenalizedEpsilon)
	for range m.changepoints {
		pen = append(pen, changepoint)
	}
	for i := 0; i < 6; i++ {
		pen = append(pen, seasonal)
	}
	if m.yearly {
		for i := 0; i < 2*yearlyOrder; i++ {
			pen = append(pen, seasonal)
		}
	}
	if m.holidays {
		for range usHolidayNames {
			pen = append(pen, holiday)
		}
	}
	return pen
}

func priorPenalty(scale float64) float64 {
	if scale <= 0 {
		return unpenalizedEpsilon
	}
	return 1.0 / scale
}

// placeChangepoints spreads candidate trend breaks evenly over the first 80%
// of the observed span.
func placeChangepoints(tmax float64, requested, n int) []float64 {
	ncp := requested
	if max := n - 2; ncp > max {
		ncp = max
	}
	if ncp <= 0 || tmax <= 0 {
		return nil
	}
	cps := make([]float64, ncp)
	span := tmax * 0.8
	for j := 1; j <= ncp; j++ {
		cps[j-1] = span * float64(j) / float64(ncp+1)
	}
	return cps
}
