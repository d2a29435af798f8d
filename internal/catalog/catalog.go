package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/awray/coasterlog/internal/model"
)

//go:embed parks.json
var parksJSON []byte

// Catalog is the immutable in-memory park dataset.
type Catalog struct {
	parks []*model.Park
	byID  map[int]*model.Park
}

// jsonPark mirrors the dataset file layout.
type jsonPark struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Location string        `json:"location"`
	State    string        `json:"state"`
	Lat      float64       `json:"lat"`
	Lon      float64       `json:"lon"`
	Coasters []jsonCoaster `json:"coasters"`
}

type jsonCoaster struct {
	Name        string  `json:"name"`
	Speed       float64 `json:"speed"`
	Height      float64 `json:"height"`
	Drop        float64 `json:"drop"`
	Length      float64 `json:"length"`
	Inversions  int     `json:"inversions"`
	Type        string  `json:"type"`
	Opened      int     `json:"opened"`
	POVVideo    string  `json:"pov_video"`
	Description string  `json:"description"`
}

type jsonDataset struct {
	Parks []jsonPark `json:"parks"`
}

// Load decodes and validates the embedded dataset.
func Load() (*Catalog, error) {
	var ds jsonDataset
	if err := json.Unmarshal(parksJSON, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode embedded dataset: %w", err)
	}

	parks := make([]*model.Park, 0, len(ds.Parks))
	for _, jp := range ds.Parks {
		park := &model.Park{
			ID:       jp.ID,
			Name:     jp.Name,
			Location: jp.Location,
			State:    jp.State,
			Lat:      jp.Lat,
			Lon:      jp.Lon,
		}
		for _, jc := range jp.Coasters {
			park.Coasters = append(park.Coasters, &model.Coaster{
				UID:         uuid.NewString(),
				Name:        jc.Name,
				Speed:       jc.Speed,
				Height:      jc.Height,
				Drop:        jc.Drop,
				Length:      jc.Length,
				Inversions:  jc.Inversions,
				Type:        jc.Type,
				Opened:      jc.Opened,
				POVVideo:    jc.POVVideo,
				Description: jc.Description,
			})
		}
		parks = append(parks, park)
	}

	return New(parks)
}

// New builds a Catalog from already-constructed parks. Exposed so tests can
// run against small fixture datasets instead of the embedded one.
func New(parks []*model.Park) (*Catalog, error) {
	if err := validate(parks); err != nil {
		return nil, err
	}

	byID := make(map[int]*model.Park, len(parks))
	for _, p := range parks {
		byID[p.ID] = p
	}

	return &Catalog{parks: parks, byID: byID}, nil
}

// validate enforces the dataset invariants the rest of the application
// relies on: CoasterID derivation assumes park ids are unique and coaster
// names are unique within their park.
func validate(parks []*model.Park) error {
	seenIDs := make(map[int]string, len(parks))
	for _, p := range parks {
		if p.Name == "" {
			return fmt.Errorf("park %d has an empty name", p.ID)
		}
		if other, dup := seenIDs[p.ID]; dup {
			return fmt.Errorf("duplicate park id %d (%q and %q)", p.ID, other, p.Name)
		}
		seenIDs[p.ID] = p.Name

		seenNames := make(map[string]bool, len(p.Coasters))
		for _, c := range p.Coasters {
			if c.Name == "" {
				return fmt.Errorf("park %q has a coaster with an empty name", p.Name)
			}
			if seenNames[c.Name] {
				return fmt.Errorf("park %q has duplicate coaster %q", p.Name, c.Name)
			}
			seenNames[c.Name] = true
		}
	}
	return nil
}

// Parks returns all parks in dataset order.
func (c *Catalog) Parks() []*model.Park {
	return c.parks
}

// Park looks up a park by id.
func (c *Catalog) Park(id int) (*model.Park, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// CoasterCount returns the total number of coasters across all parks.
func (c *Catalog) CoasterCount() int {
	n := 0
	for _, p := range c.parks {
		n += len(p.Coasters)
	}
	return n
}
