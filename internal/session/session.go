package session

import (
	"sync"
	"time"

	"github.com/lokchandra12/ZooPrediction/internal/dataset"
	"github.com/lokchandra12/ZooPrediction/internal/forecast"
	"github.com/lokchandra12/ZooPrediction/internal/ingest"
)

// Session is one loaded dataset together with the models fitted on it.
// Loading a new dataset replaces the session wholesale; nothing is merged.
// Models may be nil when fitting failed, in which case the historical frame
// is still browsable but forecasts are unavailable.
type Session struct {
	SourceName   string
	CreatedAt    time.Time
	Profile      ingest.Profile
	Records      []dataset.Record
	Models       *forecast.ModelSet
	DroppedDates int
	Warnings     []string

	mu          sync.Mutex
	horizon     int
	predictions []forecast.Prediction
}

// New builds a session around an enriched frame and its fitted models.
func New(source string, profile ingest.Profile, records []dataset.Record, models *forecast.ModelSet) *Session {
	return &Session{
		SourceName: source,
		CreatedAt:  time.Now().UTC(),
		Profile:    profile,
		Records:    records,
		Models:     models,
	}
}

// Forecast returns the prediction frame for the given horizon, regenerating
// only when the horizon changes. Safe for concurrent callers.
func (s *Session) Forecast(days int) ([]forecast.Prediction, error) {
	if s.Models == nil {
		return nil, &forecast.InsufficientDataError{Series: "total_visitors", Observations: len(s.Records)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.predictions != nil && s.horizon == days {
		return s.predictions, nil
	}
	preds, err := s.Models.Predict(days)
	if err != nil {
		return nil, err
	}
	s.horizon = days
	s.predictions = preds
	return preds, nil
}

// Manager holds the current session. There is exactly one active dataset at
// a time.
type Manager struct {
	mu      sync.RWMutex
	current *Session
}

func NewManager() *Manager { return &Manager{} }

// Replace swaps in a new session, discarding the previous one.
func (m *Manager) Replace(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
}

// Current returns the active session, or nil when no dataset has been loaded.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
