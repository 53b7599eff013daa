package forecast

import "gonum.org/v1/gonum/stat"

// trendModel is a simple linear trend over a 0-based integer time index, used
// for the adult-share percentage.
type trendModel struct {
	alpha float64
	beta  float64
}

func fitTrend(name string, y []float64) (trendModel, error) {
	if len(y) < 2 {
		return trendModel{}, &InsufficientDataError{Series: name, Observations: len(y)}
	}
	xs := make([]float64, len(y))
	for i := range xs {
		xs[i] = float64(i)
	}
	alpha, beta := stat.LinearRegression(xs, y, nil, false)
	return trendModel{alpha: alpha, beta: beta}, nil
}

func (m trendModel) at(index float64) float64 {
	return m.alpha + m.beta*index
}
