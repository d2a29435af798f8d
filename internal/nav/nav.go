// Package nav tracks which drill-down level of the catalog is focused.
//
// The machine has three levels: Home (the full catalog, rendered as a map
// or a list), ParkDetail (one park selected) and CoasterDetail (one coaster
// within that park selected). Transitions step exactly one level; there is
// no history stack. Illegal transitions are logged no-ops, never errors:
// the UI stays interactive whatever it sends.
package nav

import (
	"go.uber.org/zap"

	"github.com/awray/coasterlog/internal/catalog"
	"github.com/awray/coasterlog/internal/model"
)

// Mode selects how the Home level is rendered.
type Mode int

const (
	ModeMap Mode = iota
	ModeList
)

// String returns the settings-file name of the mode.
func (m Mode) String() string {
	if m == ModeList {
		return "list"
	}
	return "map"
}

// Level is the current drill-down depth.
type Level int

const (
	LevelHome Level = iota
	LevelPark
	LevelCoaster
)

// Machine is the navigation state machine. It is not safe for concurrent
// use; the UI event loop is single-threaded.
type Machine struct {
	cat *catalog.Catalog
	log *zap.Logger

	mode      Mode
	park      *model.Park    // nil at Home
	coaster   *model.Coaster // nil unless LevelCoaster
	coasterID string
}

// New creates a Machine at Home in map mode.
func New(cat *catalog.Catalog, logger *zap.Logger) *Machine {
	return &Machine{cat: cat, log: logger, mode: ModeMap}
}

// Level returns the current drill-down level.
func (m *Machine) Level() Level {
	switch {
	case m.coaster != nil:
		return LevelCoaster
	case m.park != nil:
		return LevelPark
	default:
		return LevelHome
	}
}

// Mode returns the Home rendering mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// SelectedPark returns the focused park, if any.
func (m *Machine) SelectedPark() (*model.Park, bool) {
	return m.park, m.park != nil
}

// SelectedCoaster returns the focused coaster, if any.
func (m *Machine) SelectedCoaster() (*model.Coaster, bool) {
	return m.coaster, m.coaster != nil
}

// SelectedCoasterID returns the CoasterID of the focused coaster, if any.
func (m *Machine) SelectedCoasterID() (string, bool) {
	return m.coasterID, m.coaster != nil
}

// SelectPark focuses a park. Legal from Home only; selecting an unknown
// park or selecting while a park is already focused is a no-op.
func (m *Machine) SelectPark(parkID int) bool {
	if m.Level() != LevelHome {
		m.log.Debug("select park ignored outside home", zap.Int("park", parkID))
		return false
	}
	park, ok := m.cat.Park(parkID)
	if !ok {
		m.log.Warn("select park ignored, unknown park", zap.Int("park", parkID))
		return false
	}
	m.park = park
	return true
}

// SelectCoaster focuses a coaster by name within the selected park. Legal
// from ParkDetail only; a coaster that does not belong to the selected
// park is a logged no-op.
func (m *Machine) SelectCoaster(coasterName string) bool {
	if m.Level() != LevelPark {
		m.log.Debug("select coaster ignored outside park detail", zap.String("coaster", coasterName))
		return false
	}
	coaster := m.park.Coaster(coasterName)
	if coaster == nil {
		m.log.Warn("select coaster ignored, not in selected park",
			zap.Int("park", m.park.ID), zap.String("coaster", coasterName))
		return false
	}
	m.coaster = coaster
	m.coasterID = m.park.CoasterID(coasterName)
	return true
}

// CloseCoaster steps from CoasterDetail back to ParkDetail.
func (m *Machine) CloseCoaster() {
	m.coaster = nil
	m.coasterID = ""
}

// ClosePark steps from ParkDetail back to Home. Any selected coaster is
// cleared too; it should already be closed, but a stale selection must not
// survive leaving the park.
func (m *Machine) ClosePark() {
	m.CloseCoaster()
	m.park = nil
}

// SetMode changes the Home rendering. Legal only at Home; elsewhere the
// mode (and the current selection) is left untouched.
func (m *Machine) SetMode(mode Mode) bool {
	if m.Level() != LevelHome {
		m.log.Debug("set mode ignored outside home")
		return false
	}
	m.mode = mode
	return true
}
