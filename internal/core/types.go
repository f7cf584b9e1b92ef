package core

import (
	"encoding/json"
	"strings"
)

// TypeName is one of the 18 canonical Pokémon types, stored lowercase.
type TypeName string

// Canonical type names.
const (
	TypeNormal   TypeName = "normal"
	TypeFire     TypeName = "fire"
	TypeWater    TypeName = "water"
	TypeElectric TypeName = "electric"
	TypeGrass    TypeName = "grass"
	TypeIce      TypeName = "ice"
	TypeFighting TypeName = "fighting"
	TypePoison   TypeName = "poison"
	TypeGround   TypeName = "ground"
	TypeFlying   TypeName = "flying"
	TypePsychic  TypeName = "psychic"
	TypeBug      TypeName = "bug"
	TypeRock     TypeName = "rock"
	TypeGhost    TypeName = "ghost"
	TypeDragon   TypeName = "dragon"
	TypeDark     TypeName = "dark"
	TypeSteel    TypeName = "steel"
	TypeFairy    TypeName = "fairy"
)

var canonicalTypes = map[TypeName]struct{}{
	TypeNormal: {}, TypeFire: {}, TypeWater: {}, TypeElectric: {},
	TypeGrass: {}, TypeIce: {}, TypeFighting: {}, TypePoison: {},
	TypeGround: {}, TypeFlying: {}, TypePsychic: {}, TypeBug: {},
	TypeRock: {}, TypeGhost: {}, TypeDragon: {}, TypeDark: {},
	TypeSteel: {}, TypeFairy: {},
}

// ParseType normalizes a user-supplied type string. The second return is
// false when the string is not one of the canonical 18 types; callers treat
// that as "no constraint" rather than an error.
func ParseType(s string) (TypeName, bool) {
	t := TypeName(strings.ToLower(strings.TrimSpace(s)))
	_, ok := canonicalTypes[t]
	return t, ok
}

// Pokemon is one immutable catalog row. Records are built once at startup
// and never mutated afterwards, so they are safe to share across requests.
type Pokemon struct {
	Number        int      `json:"number"`
	Name          string   `json:"name"`
	MainType      TypeName `json:"main_type"`
	SecondaryType TypeName `json:"secondary_type,omitempty"`
	Region        string   `json:"region,omitempty"`
	Category      string   `json:"category,omitempty"`
	WeightKG      float64  `json:"weight_kg"`
	HeightM       float64  `json:"height_m"`
	Attack        int      `json:"attack"`
	Defense       int      `json:"defense"`
	Stamina       int      `json:"stamina"`
	Speed         int      `json:"speed"`
	PokedexDesc   string   `json:"pokedex_desc,omitempty"`
	PicURL        string   `json:"pic_url,omitempty"`
}

// MarshalJSON also emits stamina under an "hp" alias for clients that speak
// the older field name.
func (p Pokemon) MarshalJSON() ([]byte, error) {
	type alias Pokemon
	return json.Marshal(struct {
		alias
		HP int `json:"hp"`
	}{alias: alias(p), HP: p.Stamina})
}

// FilterCriteria is the validated set of predicates for one search request.
// Nil bounds mean "no constraint", which is distinct from a bound of zero.
// Malformed input never reaches this struct: the HTTP and CLI layers drop
// values they cannot parse, preserving the original leniency policy.
type FilterCriteria struct {
	Query string
	Type  string

	MinAttack  *int
	MaxAttack  *int
	MinDefense *int
	MaxDefense *int
	MinStamina *int
	MaxStamina *int
	MinSpeed   *int
	MaxSpeed   *int

	MinWeight *float64
	MaxWeight *float64
	MinHeight *float64
	MaxHeight *float64

	// Generation restricts results to a dex-number range (1-9, 0 = off).
	Generation int
}

// Page is a bounded slice of filtered results plus pagination metadata.
type Page struct {
	Items      []Pokemon `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int       `json:"total_count"`
	TotalPages int       `json:"total_pages"`
	HasPrev    bool      `json:"has_prev"`
	HasNext    bool      `json:"has_next"`
}

// TypeInfo carries presentation metadata for one canonical type.
type TypeInfo struct {
	Name  TypeName `json:"name" yaml:"name"`
	Color string   `json:"color" yaml:"color"`
	Icon  string   `json:"icon" yaml:"icon"`
}

var generationRanges = map[int][2]int{
	1: {1, 151},
	2: {152, 251},
	3: {252, 386},
	4: {387, 493},
	5: {494, 649},
	6: {650, 721},
	7: {722, 809},
	8: {810, 905},
	9: {906, 1025},
}

// GenerationRange returns the inclusive dex-number range for a generation.
// Unknown generations return ok=false and are ignored by the filter engine.
func GenerationRange(gen int) (lo, hi int, ok bool) {
	r, ok := generationRanges[gen]
	return r[0], r[1], ok
}
