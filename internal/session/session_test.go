package session

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lokchandra12/ZooPrediction/internal/dataset"
	"github.com/lokchandra12/ZooPrediction/internal/forecast"
	"github.com/lokchandra12/ZooPrediction/internal/ingest"
)

func fittedSession(t *testing.T) *Session {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]ingest.CleanRow, 60)
	for i := range rows {
		rows[i] = ingest.CleanRow{
			Date:         start.AddDate(0, 0, i),
			AdultTickets: 100,
			ChildTickets: 40,
			AdultPrice:   decimal.NewFromInt(25),
			ChildPrice:   decimal.NewFromInt(15),
		}
	}
	records := dataset.Enrich(rows, dataset.DefaultPrices())
	models, err := forecast.Fit(records, forecast.DefaultConfig())
	if err != nil {
		t.Fatalf("fit err=%v", err)
	}
	return New("ledger.tsv", ingest.ProfileLedger, records, models)
}

func TestManager_ReplaceAndCurrent(t *testing.T) {
	m := NewManager()
	if m.Current() != nil {
		t.Fatalf("fresh manager has a session")
	}
	s := fittedSession(t)
	m.Replace(s)
	if m.Current() != s {
		t.Fatalf("current=%p want=%p", m.Current(), s)
	}

	replacement := fittedSession(t)
	m.Replace(replacement)
	if m.Current() != replacement {
		t.Fatalf("replace did not swap the session")
	}
}

func TestSession_ForecastCachesByHorizon(t *testing.T) {
	s := fittedSession(t)

	first, err := s.Forecast(30)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(first) != 30 {
		t.Fatalf("len=%d want=30", len(first))
	}

	second, err := s.Forecast(30)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if &first[0] != &second[0] {
		t.Fatalf("same horizon regenerated the frame")
	}

	third, err := s.Forecast(90)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(third) != 90 {
		t.Fatalf("len=%d want=90", len(third))
	}
}

func TestSession_ForecastWithoutModels(t *testing.T) {
	s := New("tiny.csv", ingest.ProfileGeneric, nil, nil)
	_, err := s.Forecast(30)
	var insufficient *forecast.InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err=%v want=*InsufficientDataError", err)
	}
}

func TestSession_ForecastInvalidHorizon(t *testing.T) {
	s := fittedSession(t)
	_, err := s.Forecast(0)
	var invalid *forecast.InvalidHorizonError
	if !errors.As(err, &invalid) {
		t.Fatalf("err=%v want=*InvalidHorizonError", err)
	}
}
