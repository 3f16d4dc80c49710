// Package tracking turns a stream of GPS fixes into a route and its cumulative distance.
package tracking

import (
	"errors"

	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/pkg/geo"
)

// DefaultMinMovementKm rejects GPS jitter below 5 meters
const DefaultMinMovementKm = 0.005

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Update describes what a single fix did to the accumulator
type Update struct {
	Accepted   bool
	DeltaKm    float64
	DistanceKm float64
}

// Accumulator is not safe for concurrent use; callers serialize fixes.
type Accumulator struct {
	minMovementKm float64

	route      []models.LocationPoint
	current    *models.LocationPoint
	distanceKm float64
}

func NewAccumulator(minMovementKm float64) *Accumulator {
	if minMovementKm <= 0 {
		minMovementKm = DefaultMinMovementKm
	}
	return &Accumulator{minMovementKm: minMovementKm}
}

// Add applies a fix. The current position always moves; the route and
// distance only grow when the fix is farther than the threshold from the
// last accepted point.
func (a *Accumulator) Add(p models.LocationPoint) (Update, error) {
	if !geo.ValidCoordinates(p.Latitude, p.Longitude) {
		return Update{DistanceKm: a.distanceKm}, ErrInvalidCoordinates
	}

	current := p
	a.current = &current

	if len(a.route) == 0 {
		a.route = append(a.route, p)
		return Update{Accepted: true, DistanceKm: a.distanceKm}, nil
	}

	last := a.route[len(a.route)-1]
	delta := geo.HaversineKm(last.Latitude, last.Longitude, p.Latitude, p.Longitude)
	if delta <= a.minMovementKm {
		return Update{DistanceKm: a.distanceKm}, nil
	}

	a.route = append(a.route, p)
	a.distanceKm += delta
	return Update{Accepted: true, DeltaKm: delta, DistanceKm: a.distanceKm}, nil
}

func (a *Accumulator) DistanceKm() float64 {
	return a.distanceKm
}

// Current returns the latest fix, accepted or not.
func (a *Accumulator) Current() (models.LocationPoint, bool) {
	if a.current == nil {
		return models.LocationPoint{}, false
	}
	return *a.current, true
}

// Route returns a copy of the accepted points.
func (a *Accumulator) Route() []models.LocationPoint {
	out := make([]models.LocationPoint, len(a.route))
	copy(out, a.route)
	return out
}

func (a *Accumulator) Len() int {
	return len(a.route)
}

func (a *Accumulator) Reset() {
	a.route = nil
	a.current = nil
	a.distanceKm = 0
}
