package core

import (
	"net/url"
	"strconv"
)

// CriteriaFromValues maps recognized filter parameters onto FilterCriteria.
// This is the single place enumerating every filter field the search
// surfaces accept. Absent or unparseable numeric values become nil bounds,
// so "no value" and "zero" stay distinguishable and malformed input never
// fails a request.
func CriteriaFromValues(params url.Values) FilterCriteria {
	return FilterCriteria{
		Query:      params.Get("q"),
		Type:       params.Get("type"),
		Generation: intValueDefault(params, "gen", 0),

		MinAttack:  intValue(params, "minAttack"),
		MaxAttack:  intValue(params, "maxAttack"),
		MinDefense: intValue(params, "minDefense"),
		MaxDefense: intValue(params, "maxDefense"),
		MinStamina: intValue(params, "minStamina"),
		MaxStamina: intValue(params, "maxStamina"),
		MinSpeed:   intValue(params, "minSpeed"),
		MaxSpeed:   intValue(params, "maxSpeed"),

		MinWeight: floatValue(params, "minWeight"),
		MaxWeight: floatValue(params, "maxWeight"),
		MinHeight: floatValue(params, "minHeight"),
		MaxHeight: floatValue(params, "maxHeight"),
	}
}

func intValue(params url.Values, key string) *int {
	raw := params.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func floatValue(params url.Values, key string) *float64 {
	raw := params.Get(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func intValueDefault(params url.Values, key string, def int) int {
	if p := intValue(params, key); p != nil {
		return *p
	}
	return def
}
