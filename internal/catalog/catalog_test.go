package catalog

import (
	"testing"

	"github.com/awray/coasterlog/internal/model"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	parks := cat.Parks()
	if len(parks) != 10 {
		t.Fatalf("got %d parks, want 10", len(parks))
	}

	cp, ok := cat.Park(1)
	if !ok {
		t.Fatal("park 1 missing")
	}
	if cp.Name != "Cedar Point" || cp.Location != "Sandusky, OH" {
		t.Errorf("park 1 = %q (%q), want Cedar Point (Sandusky, OH)", cp.Name, cp.Location)
	}
	if cp.Coaster("Millennium Force") == nil {
		t.Error("Cedar Point should have Millennium Force")
	}

	if cat.CoasterCount() == 0 {
		t.Error("CoasterCount() = 0")
	}
}

func TestLoad_MintsUIDs(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	seen := make(map[string]bool)
	for _, p := range cat.Parks() {
		for _, c := range p.Coasters {
			if c.UID == "" {
				t.Fatalf("coaster %q has no UID", c.Name)
			}
			if seen[c.UID] {
				t.Fatalf("duplicate UID %q", c.UID)
			}
			seen[c.UID] = true
		}
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		parks []*model.Park
	}{
		{
			"duplicate park id",
			[]*model.Park{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}},
		},
		{
			"empty park name",
			[]*model.Park{{ID: 1}},
		},
		{
			"duplicate coaster name within park",
			[]*model.Park{{ID: 1, Name: "A", Coasters: []*model.Coaster{
				{Name: "Loop"}, {Name: "Loop"},
			}}},
		},
		{
			"empty coaster name",
			[]*model.Park{{ID: 1, Name: "A", Coasters: []*model.Coaster{{Name: ""}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.parks); err == nil {
				t.Error("New() should have rejected the dataset")
			}
		})
	}
}

func TestNew_AllowsSameCoasterNameAcrossParks(t *testing.T) {
	parks := []*model.Park{
		{ID: 1, Name: "A", Coasters: []*model.Coaster{{Name: "Goliath"}}},
		{ID: 2, Name: "B", Coasters: []*model.Coaster{{Name: "Goliath"}}},
	}
	if _, err := New(parks); err != nil {
		t.Errorf("New() error: %v", err)
	}
}

func filterFixture(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New([]*model.Park{
		{ID: 1, Name: "Cedar Point", Location: "Sandusky, OH", State: "OH", Coasters: []*model.Coaster{
			{Name: "Millennium Force"}, {Name: "Maverick"}, {Name: "Raptor"},
		}},
		{ID: 2, Name: "Kings Island", Location: "Mason, OH", State: "OH", Coasters: []*model.Coaster{
			{Name: "The Beast"}, {Name: "Orion"},
		}},
		{ID: 3, Name: "Carowinds", Location: "Charlotte, NC", State: "NC", Coasters: []*model.Coaster{
			{Name: "Fury 325"},
		}},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return cat
}

func TestFilter_EmptyTermIsIdentity(t *testing.T) {
	cat := filterFixture(t)

	for _, term := range []string{"", "   ", "\t"} {
		got := cat.Filter(term)
		if len(got) != 3 {
			t.Fatalf("Filter(%q) returned %d parks, want 3", term, len(got))
		}
		for i, p := range cat.Parks() {
			if got[i] != p {
				t.Errorf("Filter(%q) changed order at %d: got %q want %q", term, i, got[i].Name, p.Name)
			}
		}
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	cat := filterFixture(t)

	for _, term := range []string{"cedar", "CEDAR", "Cedar", "ceDAR"} {
		got := cat.Filter(term)
		if len(got) != 1 || got[0].Name != "Cedar Point" {
			t.Errorf("Filter(%q) = %v, want just Cedar Point", term, parkNames(got))
		}
	}
}

func TestFilter_MatchesCoasterName(t *testing.T) {
	cat := filterFixture(t)

	got := cat.Filter("fury")
	if len(got) != 1 || got[0].Name != "Carowinds" {
		t.Fatalf("Filter(%q) = %v, want just Carowinds", "fury", parkNames(got))
	}
}

func TestFilter_MatchesLocationAndState(t *testing.T) {
	cat := filterFixture(t)

	if got := cat.Filter("sandusky"); len(got) != 1 || got[0].Name != "Cedar Point" {
		t.Errorf("Filter(%q) = %v, want just Cedar Point", "sandusky", parkNames(got))
	}
	if got := cat.Filter("oh"); len(got) != 2 {
		t.Errorf("Filter(%q) = %v, want both Ohio parks", "oh", parkNames(got))
	}
	if got := cat.Filter("zzz"); len(got) != 0 {
		t.Errorf("Filter(%q) = %v, want none", "zzz", parkNames(got))
	}
}

func TestFilter_ReturnsWholePark(t *testing.T) {
	cat := filterFixture(t)

	// "maverick" matches a single coaster, but the park comes back whole:
	// the filter works at park level, never trimming coaster lists.
	got := cat.Filter("maverick")
	if len(got) != 1 || got[0].Name != "Cedar Point" {
		t.Fatalf("Filter(%q) = %v, want just Cedar Point", "maverick", parkNames(got))
	}
	if len(got[0].Coasters) != 3 {
		t.Errorf("matched park has %d coasters, want its full list of 3", len(got[0].Coasters))
	}
}

func TestFilter_CedarPointScenario(t *testing.T) {
	// The embedded dataset is Cedar Point plus nine parks that do not
	// contain "cedar" anywhere.
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	got := cat.Filter("Cedar")
	if len(got) != 1 {
		t.Fatalf("Filter(%q) = %v, want exactly one park", "Cedar", parkNames(got))
	}
	if got[0].Name != "Cedar Point" {
		t.Fatalf("Filter(%q) = %q, want Cedar Point", "Cedar", got[0].Name)
	}
	if len(got[0].Coasters) != 6 {
		t.Errorf("Cedar Point returned with %d coasters, want full list of 6", len(got[0].Coasters))
	}
}

func parkNames(parks []*model.Park) []string {
	names := make([]string, len(parks))
	for i, p := range parks {
		names[i] = p.Name
	}
	return names
}
