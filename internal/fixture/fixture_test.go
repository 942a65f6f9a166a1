package fixture_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jt828/dropwizard-fixture/internal/fixture"
	"github.com/jt828/dropwizard-fixture/pkg/dropwizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Version    string                    `json:"version"`
	Gauges     map[string]map[string]any `json:"gauges"`
	Counters   map[string]map[string]any `json:"counters"`
	Histograms map[string]map[string]any `json:"histograms"`
	Meters     map[string]map[string]any `json:"meters"`
	Timers     map[string]map[string]any `json:"timers"`
}

func newFixture(t *testing.T) *fixture.Fixture {
	t.Helper()
	f, err := fixture.Init()
	require.NoError(t, err)
	t.Cleanup(f.Close)
	return f
}

func scrape(t *testing.T, f *fixture.Fixture) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, dropwizard.WriteJSON(&buf, f.Registry(), dropwizard.Options{}))
	return buf.Bytes()
}

func TestInit(t *testing.T) {
	t.Run("registers exactly the five fixture metrics", func(t *testing.T) {
		f := newFixture(t)

		assert.Equal(t, []string{
			fixture.CounterName,
			fixture.GaugeName,
			fixture.HistogramName,
			fixture.MeterName,
			fixture.TimerName,
		}, f.Names())
	})

	t.Run("each init owns a separate registry", func(t *testing.T) {
		a := newFixture(t)
		b := newFixture(t)

		assert.NotSame(t, a.Registry(), b.Registry())
		assert.Len(t, b.Names(), 5)
	})
}

func TestFixtureSnapshot(t *testing.T) {
	f := newFixture(t)

	var s snapshot
	require.NoError(t, json.Unmarshal(scrape(t, f), &s))

	t.Run("counter is one", func(t *testing.T) {
		require.Contains(t, s.Counters, fixture.CounterName)
		assert.Equal(t, float64(1), s.Counters[fixture.CounterName]["count"])
	})

	t.Run("meter timer and histogram have no activity", func(t *testing.T) {
		require.Contains(t, s.Meters, fixture.MeterName)
		assert.Equal(t, float64(0), s.Meters[fixture.MeterName]["count"])
		assert.Equal(t, float64(0), s.Meters[fixture.MeterName]["mean_rate"])

		require.Contains(t, s.Timers, fixture.TimerName)
		assert.Equal(t, float64(0), s.Timers[fixture.TimerName]["count"])

		require.Contains(t, s.Histograms, fixture.HistogramName)
		assert.Equal(t, float64(0), s.Histograms[fixture.HistogramName]["count"])
	})

	t.Run("gauge has no value", func(t *testing.T) {
		require.Contains(t, s.Gauges, fixture.GaugeName)
		v, ok := s.Gauges[fixture.GaugeName]["value"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("nothing else is exported", func(t *testing.T) {
		total := len(s.Gauges) + len(s.Counters) + len(s.Histograms) + len(s.Meters) + len(s.Timers)
		assert.Equal(t, 5, total)
	})
}

func TestFixtureScrapeIsIdempotent(t *testing.T) {
	f := newFixture(t)

	first := scrape(t, f)
	second := scrape(t, f)

	assert.Equal(t, string(first), string(second))
}
