package domain

// Item is an immutable snapshot of an object fetched from the item database.
// A nil Recipe means the item cannot be crafted; a resolved recipe is never empty.
type Item struct {
	ID          int                `json:"ankama_id"`
	Name        string             `json:"name"`
	Level       int                `json:"level,omitempty"`
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	ImageURL    string             `json:"image_urls"`
	Recipe      []RecipeIngredient `json:"recipe"`
	Effects     []Effect           `json:"effects,omitempty"`
	Price       *PriceData         `json:"price,omitempty"`
	Drops       []Drop             `json:"drops,omitempty"`
}

// HasRecipe reports whether the item carries a recipe
func (i Item) HasRecipe() bool {
	return i.Recipe != nil
}

// Effect is a pre-formatted effect line
type Effect struct {
	Formatted string `json:"formatted"`
}

// PriceData holds market price statistics for an item
type PriceData struct {
	Average int `json:"average"`
	Min     int `json:"min"`
	Max     int `json:"max"`
}

// Drop describes a monster that drops an item
type Drop struct {
	MonsterName string `json:"monster_name"`
	DropChance  string `json:"drop_chance"`
}

// SearchResult is a lightweight item returned by search endpoints
type SearchResult struct {
	ID       int    `json:"ankama_id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Type     string `json:"type"`
	ImageURL string `json:"image_urls"`
}

// ItemSet is an equipment set with its bonuses and member items
type ItemSet struct {
	ID      int        `json:"ankama_id"`
	Name    string     `json:"name"`
	Level   int        `json:"level"`
	Bonuses []SetBonus `json:"bonuses"`
	Items   []Item     `json:"items"`
}

// SetBonus lists the effects granted when NumItems pieces are equipped
type SetBonus struct {
	NumItems int      `json:"numItems"`
	Effects  []Effect `json:"effects"`
}

// SetSearchResult is a lightweight set returned by search endpoints
type SetSearchResult struct {
	ID         int    `json:"ankama_id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	ItemsCount int    `json:"items_count"`
}
