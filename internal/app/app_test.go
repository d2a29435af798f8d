package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/awray/coasterlog/internal/catalog"
	"github.com/awray/coasterlog/internal/model"
	"github.com/awray/coasterlog/internal/nav"
	"github.com/awray/coasterlog/internal/persist"
	"github.com/awray/coasterlog/internal/store"
)

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]*model.Park{
		{ID: 1, Name: "Cedar Point", Location: "Sandusky, OH", State: "OH", Coasters: []*model.Coaster{
			{Name: "Millennium Force"}, {Name: "Maverick"}, {Name: "Raptor"},
		}},
		{ID: 2, Name: "Carowinds", Location: "Charlotte, NC", State: "NC", Coasters: []*model.Coaster{
			{Name: "Fury 325"}, {Name: "Afterburn"},
		}},
	})
	require.NoError(t, err)
	return cat
}

func newApp(t *testing.T, st store.Store) *App {
	t.Helper()
	svc := persist.New(st, zap.NewNop())
	a := New(context.Background(), fixtureCatalog(t), svc, zap.NewNop())
	t.Cleanup(func() {
		require.NoError(t, a.Close())
	})
	return a
}

func TestToggleRidden_TwiceCancels(t *testing.T) {
	a := newApp(t, store.NewMemory())

	assert.False(t, a.Ridden(1, "Maverick"))
	assert.True(t, a.ToggleRidden(1, "Maverick"))
	assert.True(t, a.Ridden(1, "Maverick"))
	assert.False(t, a.ToggleRidden(1, "Maverick"))
	assert.False(t, a.Ridden(1, "Maverick"))
}

func TestToggleRidden_UnknownCoaster(t *testing.T) {
	a := newApp(t, store.NewMemory())

	assert.False(t, a.ToggleRidden(1, "Fury 325"), "coaster of another park")
	assert.False(t, a.ToggleRidden(99, "Maverick"), "unknown park")
	assert.Empty(t, a.RiddenMap())
}

func TestSetRating(t *testing.T) {
	a := newApp(t, store.NewMemory())

	assert.False(t, a.SetRating(1, "Maverick", 0))
	assert.False(t, a.SetRating(1, "Maverick", 6))
	_, ok := a.Rating(1, "Maverick")
	assert.False(t, ok, "rejected ratings must leave the map unchanged")

	assert.True(t, a.SetRating(1, "Maverick", 3))
	r, ok := a.Rating(1, "Maverick")
	require.True(t, ok)
	assert.Equal(t, 3, r)
	assert.Len(t, a.RatingMap(), 1)

	// Re-rating updates in place.
	assert.True(t, a.SetRating(1, "Maverick", 5))
	r, _ = a.Rating(1, "Maverick")
	assert.Equal(t, 5, r)
	assert.Len(t, a.RatingMap(), 1)
}

func TestClearRating(t *testing.T) {
	a := newApp(t, store.NewMemory())

	a.ClearRating(1, "Maverick") // unrated: no-op

	require.True(t, a.SetRating(1, "Maverick", 4))
	a.ClearRating(1, "Maverick")
	_, ok := a.Rating(1, "Maverick")
	assert.False(t, ok)
}

func TestNavigationFlow(t *testing.T) {
	a := newApp(t, store.NewMemory())

	assert.Equal(t, nav.LevelHome, a.Level())
	require.True(t, a.SelectPark(1))
	require.True(t, a.SelectCoaster("Raptor"))

	c, ok := a.SelectedCoaster()
	require.True(t, ok)
	assert.Equal(t, "Raptor", c.Name)

	a.CloseCoaster()
	assert.Equal(t, nav.LevelPark, a.Level())
	a.ClosePark()
	assert.Equal(t, nav.LevelHome, a.Level())
}

func TestSelectCoaster_WrongParkLeavesStateUnchanged(t *testing.T) {
	a := newApp(t, store.NewMemory())
	require.True(t, a.SelectPark(1))

	assert.False(t, a.SelectCoaster("Fury 325"))
	assert.Equal(t, nav.LevelPark, a.Level())
	park, _ := a.SelectedPark()
	assert.Equal(t, 1, park.ID)
}

func TestSearch(t *testing.T) {
	a := newApp(t, store.NewMemory())

	assert.Len(t, a.VisibleParks(), 2)

	a.SetSearch("fury")
	got := a.VisibleParks()
	require.Len(t, got, 1)
	assert.Equal(t, "Carowinds", got[0].Name)
	assert.Len(t, got[0].Coasters, 2, "matched park keeps its full coaster list")

	a.SetSearch("")
	assert.Len(t, a.VisibleParks(), 2)
}

func TestParkProgress(t *testing.T) {
	a := newApp(t, store.NewMemory())
	cp := a.VisibleParks()[0]

	ridden, total := a.ParkProgress(cp)
	assert.Equal(t, 0, ridden)
	assert.Equal(t, 3, total)

	a.ToggleRidden(1, "Maverick")
	a.ToggleRidden(1, "Raptor")
	ridden, _ = a.ParkProgress(cp)
	assert.Equal(t, 2, ridden)
}

func TestStatePersistsAcrossSessions(t *testing.T) {
	st := store.NewMemory()

	first := persist.New(st, zap.NewNop())
	a := New(context.Background(), fixtureCatalog(t), first, zap.NewNop())
	a.ToggleRidden(1, "Millennium Force")
	require.True(t, a.SetRating(1, "Millennium Force", 5))
	require.NoError(t, a.Close())

	second := persist.New(st, zap.NewNop())
	b := New(context.Background(), fixtureCatalog(t), second, zap.NewNop())
	defer b.Close()

	assert.True(t, b.Ridden(1, "Millennium Force"))
	r, ok := b.Rating(1, "Millennium Force")
	require.True(t, ok)
	assert.Equal(t, 5, r)
}
