package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"tomato-monitor/internal/modules/sensors/types"
)

const (
	baseTemperature  = 25.0
	baseHumidity     = 60.0
	baseLight        = 5000.0
	baseSoilMoisture = 65.0
	baseCO2          = 800.0

	minTemperature, maxTemperature   = 15.0, 35.0
	minHumidity, maxHumidity         = 30.0, 90.0
	minLight, maxLight               = 0.0, 10000.0
	minSoilMoisture, maxSoilMoisture = 20.0, 90.0
	minCO2, maxCO2                   = 400.0, 1500.0

	// DefaultMaxPoints caps a series at one week of one-minute samples.
	DefaultMaxPoints = 7 * 24 * 60
)

// ErrInvalidParameter is returned for a window or interval that cannot produce a series.
var ErrInvalidParameter = errors.New("invalid parameter")

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandSource makes r safe to share between concurrent requests.
func NewRandSource(r *rand.Rand) Source {
	return &lockedSource{r: r}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

type Option func(*Generator)

func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithMaxPoints bounds the length of a historical series. Values <= 0 are ignored.
func WithMaxPoints(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxPoints = n
		}
	}
}

// Generator synthesizes sensor readings around fixed baselines.
type Generator struct {
	src       Source
	now       func() time.Time
	maxPoints int
}

func New(opts ...Option) *Generator {
	g := &Generator{
		src:       globalSource{},
		now:       time.Now,
		maxPoints: DefaultMaxPoints,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) MaxPoints() int {
	return g.maxPoints
}

// Current returns a reading for the present moment.
func (g *Generator) Current() types.Reading {
	return types.Reading{
		Timestamp:    g.now(),
		Temperature:  round1(clamp(baseTemperature+g.noise(3), minTemperature, maxTemperature)),
		Humidity:     round1(clamp(baseHumidity+g.noise(10), minHumidity, maxHumidity)),
		Light:        int(clamp(baseLight+g.noise(1000), minLight, maxLight)),
		SoilMoisture: round1(clamp(baseSoilMoisture+g.noise(5), minSoilMoisture, maxSoilMoisture)),
		CO2:          int(clamp(baseCO2+g.noise(100), minCO2, maxCO2)),
	}
}

// Historical returns floor(hours*60/intervalMinutes) readings ending now,
// ordered oldest first.
func (g *Generator) Historical(hours, intervalMinutes int) ([]types.Reading, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("interval must be > 0, got %d: %w", intervalMinutes, ErrInvalidParameter)
	}
	if hours < 0 {
		return nil, fmt.Errorf("hours must be >= 0, got %d: %w", hours, ErrInvalidParameter)
	}
	if hours > math.MaxInt/60 {
		return nil, fmt.Errorf("hours %d out of range: %w", hours, ErrInvalidParameter)
	}

	points := hours * 60 / intervalMinutes
	if points > g.maxPoints {
		return nil, fmt.Errorf("%d points requested, limit is %d: %w", points, g.maxPoints, ErrInvalidParameter)
	}

	now := g.now().Truncate(time.Second)
	step := time.Duration(intervalMinutes) * time.Minute

	readings := make([]types.Reading, 0, points)
	for i := range points {
		readings = append(readings, g.pointAt(now.Add(-time.Duration(i)*step)))
	}
	slices.Reverse(readings)

	return readings, nil
}

func (g *Generator) pointAt(t time.Time) types.Reading {
	df := DayFactor(t)

	temperature := baseTemperature - df*5 + g.noise(1)
	humidity := baseHumidity + df*15 + g.noise(5)
	light := baseLight*(1-df*0.9) + g.noise(200)
	soil := baseSoilMoisture + g.noise(3)
	co2 := baseCO2 + g.noise(50)

	return types.Reading{
		Timestamp:    t,
		Temperature:  round1(clamp(temperature, minTemperature, maxTemperature)),
		Humidity:     round1(clamp(humidity, minHumidity, maxHumidity)),
		Light:        int(clamp(light, minLight, maxLight)),
		SoilMoisture: round1(clamp(soil, minSoilMoisture, maxSoilMoisture)),
		CO2:          int(clamp(co2, minCO2, maxCO2)),
	}
}

// DayFactor is 0 at noon and 1 at midnight, measured in t's own location.
func DayFactor(t time.Time) float64 {
	return math.Abs(12-float64(t.Hour())) / 12.0
}

// noise is uniform in [-spread, spread).
func (g *Generator) noise(spread float64) float64 {
	return (g.src.Float64()*2 - 1) * spread
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
