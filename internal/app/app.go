package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/awray/coasterlog/internal/catalog"
	"github.com/awray/coasterlog/internal/model"
	"github.com/awray/coasterlog/internal/nav"
	"github.com/awray/coasterlog/internal/persist"
)

// App is the application controller: one owner for all mutable state and
// the only mutation surface the UI sees. Not safe for concurrent use; the
// UI event loop is single-threaded.
type App struct {
	cat     *catalog.Catalog
	nav     *nav.Machine
	persist *persist.Service
	log     *zap.Logger

	ridden  model.RiddenMap
	ratings model.RatingMap
	search  string
}

// New builds an App and loads the persisted user state. Load is fail-soft,
// so New cannot fail on a bad store; it only reports catalog problems via
// the caller-supplied catalog.
func New(ctx context.Context, cat *catalog.Catalog, svc *persist.Service, logger *zap.Logger) *App {
	ridden, ratings := svc.Load(ctx)
	return &App{
		cat:     cat,
		nav:     nav.New(cat, logger),
		persist: svc,
		log:     logger,
		ridden:  ridden,
		ratings: ratings,
	}
}

// Close flushes pending writes and stops the persistence service.
func (a *App) Close() error {
	return a.persist.Close()
}

// --- navigation intents -------------------------------------------------

// SelectPark drills from Home into a park.
func (a *App) SelectPark(parkID int) bool { return a.nav.SelectPark(parkID) }

// SelectCoaster drills from a park into one of its coasters.
func (a *App) SelectCoaster(coasterName string) bool { return a.nav.SelectCoaster(coasterName) }

// CloseCoaster steps back to the park view.
func (a *App) CloseCoaster() { a.nav.CloseCoaster() }

// ClosePark steps back to Home.
func (a *App) ClosePark() { a.nav.ClosePark() }

// SetMode switches the Home rendering between map and list.
func (a *App) SetMode(mode nav.Mode) bool { return a.nav.SetMode(mode) }

// Level returns the current drill-down level.
func (a *App) Level() nav.Level { return a.nav.Level() }

// Mode returns the Home rendering mode.
func (a *App) Mode() nav.Mode { return a.nav.Mode() }

// SelectedPark returns the focused park, if any.
func (a *App) SelectedPark() (*model.Park, bool) { return a.nav.SelectedPark() }

// SelectedCoaster returns the focused coaster, if any.
func (a *App) SelectedCoaster() (*model.Coaster, bool) { return a.nav.SelectedCoaster() }

// --- search -------------------------------------------------------------

// SetSearch replaces the free-text search term.
func (a *App) SetSearch(term string) {
	a.search = term
}

// Search returns the current search term.
func (a *App) Search() string {
	return a.search
}

// VisibleParks returns the parks matching the current search term, in
// dataset order. With an empty term that is the whole catalog.
func (a *App) VisibleParks() []*model.Park {
	return a.cat.Filter(a.search)
}

// --- ridden / rating intents --------------------------------------------

// ToggleRidden flips the ridden flag for a coaster and queues a save.
// Each call inverts the flag (absent counts as false); two identical
// toggles cancel out. Returns the new flag value; an unknown coaster is a
// logged no-op returning false.
func (a *App) ToggleRidden(parkID int, coasterName string) bool {
	if !a.coasterExists(parkID, coasterName) {
		a.log.Warn("toggle ridden ignored, unknown coaster",
			zap.Int("park", parkID), zap.String("coaster", coasterName))
		return false
	}
	id := model.CoasterID(parkID, coasterName)
	a.ridden[id] = !a.ridden[id]
	a.persist.SaveRidden(a.ridden)
	return a.ridden[id]
}

// SetRating stores a 1-5 star rating for a coaster and queues a save.
// Out-of-range ratings and unknown coasters are rejected as logged no-ops;
// nothing is clamped.
func (a *App) SetRating(parkID int, coasterName string, rating int) bool {
	if !model.ValidRating(rating) {
		a.log.Warn("rating rejected, out of range",
			zap.Int("park", parkID), zap.String("coaster", coasterName), zap.Int("rating", rating))
		return false
	}
	if !a.coasterExists(parkID, coasterName) {
		a.log.Warn("rating ignored, unknown coaster",
			zap.Int("park", parkID), zap.String("coaster", coasterName))
		return false
	}
	a.ratings[model.CoasterID(parkID, coasterName)] = rating
	a.persist.SaveRating(a.ratings)
	return true
}

// ClearRating removes a coaster's rating, if present, and queues a save.
// Clearing an unrated coaster is a no-op without a save.
func (a *App) ClearRating(parkID int, coasterName string) {
	id := model.CoasterID(parkID, coasterName)
	if _, ok := a.ratings[id]; !ok {
		return
	}
	delete(a.ratings, id)
	a.persist.SaveRating(a.ratings)
}

// Ridden reports whether the user has ridden a coaster.
func (a *App) Ridden(parkID int, coasterName string) bool {
	return a.ridden[model.CoasterID(parkID, coasterName)]
}

// Rating returns a coaster's rating, if one is set.
func (a *App) Rating(parkID int, coasterName string) (int, bool) {
	r, ok := a.ratings[model.CoasterID(parkID, coasterName)]
	return r, ok
}

// RiddenMap exposes the ridden map for export. Callers must not mutate it.
func (a *App) RiddenMap() model.RiddenMap { return a.ridden }

// RatingMap exposes the rating map for export. Callers must not mutate it.
func (a *App) RatingMap() model.RatingMap { return a.ratings }

// ParkProgress returns how many of a park's coasters are marked ridden.
func (a *App) ParkProgress(p *model.Park) (ridden, total int) {
	for _, c := range p.Coasters {
		if a.ridden[p.CoasterID(c.Name)] {
			ridden++
		}
	}
	return ridden, len(p.Coasters)
}

// Flush blocks until queued saves have hit the store. Tests use it; the
// UI never does.
func (a *App) Flush() {
	a.persist.Flush()
}

func (a *App) coasterExists(parkID int, coasterName string) bool {
	park, ok := a.cat.Park(parkID)
	if !ok {
		return false
	}
	return park.Coaster(coasterName) != nil
}
