package dofusdb

import (
	"encoding/json"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// imageURLs accepts either a plain URL string or the API's object of sizes,
// keeping the first available of sd, icon, hd, default
type imageURLs string

func (u *imageURLs) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*u = imageURLs(s)
		return nil
	}

	var sizes struct {
		SD      string `json:"sd"`
		Icon    string `json:"icon"`
		HD      string `json:"hd"`
		Default string `json:"default"`
	}
	if err := json.Unmarshal(data, &sizes); err != nil {
		// Unexpected shapes degrade to no image rather than failing the item
		*u = ""
		return nil
	}

	for _, candidate := range []string{sizes.SD, sizes.Icon, sizes.HD, sizes.Default} {
		if candidate != "" {
			*u = imageURLs(candidate)
			return nil
		}
	}
	*u = ""
	return nil
}

type namedRef struct {
	Name string `json:"name"`
}

type rawEffect struct {
	Formatted string `json:"formatted"`
}

type rawRecipeIngredient struct {
	ItemID      int    `json:"item_ankama_id"`
	ItemSubtype string `json:"item_subtype"`
	Quantity    int    `json:"quantity"`
}

type rawItem struct {
	AnkamaID    int                   `json:"ankama_id"`
	Name        string                `json:"name"`
	Level       int                   `json:"level"`
	Type        *namedRef             `json:"type"`
	Family      *namedRef             `json:"family"`
	Description string                `json:"description"`
	ImageURLs   imageURLs             `json:"image_urls"`
	Effects     []rawEffect           `json:"effects"`
	Recipe      []rawRecipeIngredient `json:"recipe"`
	Price       *domain.PriceData     `json:"price"`
	Drops       []domain.Drop         `json:"drops"`
}

// typeName prefers the item type, then the mount family
func (r *rawItem) typeName() string {
	if r.Type != nil && r.Type.Name != "" {
		return r.Type.Name
	}
	if r.Family != nil && r.Family.Name != "" {
		return r.Family.Name
	}
	return UnknownTypeName
}

type rawSetSearchResult struct {
	AnkamaID int    `json:"ankama_id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Items    int    `json:"items"`
}

type rawSet struct {
	AnkamaID     int                    `json:"ankama_id"`
	Name         string                 `json:"name"`
	Level        int                    `json:"level"`
	Effects      map[string][]rawEffect `json:"effects"`
	EquipmentIDs []int                  `json:"equipment_ids"`
}

func toEffects(raw []rawEffect) []domain.Effect {
	out := make([]domain.Effect, 0, len(raw))
	for _, e := range raw {
		out = append(out, domain.Effect{Formatted: e.Formatted})
	}
	return out
}
