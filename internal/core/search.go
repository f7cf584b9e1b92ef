package core

import "strings"

// Search applies criteria to the catalog and paginates the matches.
//
// Every predicate is optional; set predicates are ANDed. Matching preserves
// the catalog's dex order. page is 1-indexed: values below 1 clamp to 1,
// while a page past the end yields empty items with HasNext=false rather
// than an error.
func Search(catalog *Catalog, criteria FilterCriteria, page, pageSize int) Page {
	matched := filter(catalog.All(), criteria)
	return Paginate(matched, page, pageSize)
}

func filter(records []Pokemon, criteria FilterCriteria) []Pokemon {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	typeFilter, typeOK := ParseType(criteria.Type)

	genLo, genHi, genOK := 0, 0, false
	if criteria.Generation != 0 {
		genLo, genHi, genOK = GenerationRange(criteria.Generation)
	}

	matched := make([]Pokemon, 0, len(records))
	for _, p := range records {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if typeOK && p.MainType != typeFilter && p.SecondaryType != typeFilter {
			continue
		}
		if genOK && (p.Number < genLo || p.Number > genHi) {
			continue
		}
		if !intWithin(p.Attack, criteria.MinAttack, criteria.MaxAttack) {
			continue
		}
		if !intWithin(p.Defense, criteria.MinDefense, criteria.MaxDefense) {
			continue
		}
		if !intWithin(p.Stamina, criteria.MinStamina, criteria.MaxStamina) {
			continue
		}
		if !intWithin(p.Speed, criteria.MinSpeed, criteria.MaxSpeed) {
			continue
		}
		if !floatWithin(p.WeightKG, criteria.MinWeight, criteria.MaxWeight) {
			continue
		}
		if !floatWithin(p.HeightM, criteria.MinHeight, criteria.MaxHeight) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func intWithin(value int, min, max *int) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func floatWithin(value float64, min, max *float64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

// Paginate slices items into a page. TotalPages is never below 1, even for
// an empty match set. A page past the end keeps the requested page number
// and returns empty items, matching the lenient out-of-range behavior of
// the search surface.
func Paginate(items []Pokemon, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	var slice []Pokemon
	if start < total {
		if end > total {
			end = total
		}
		slice = items[start:end]
	}

	out := make([]Pokemon, len(slice))
	copy(out, slice)

	return Page{
		Items:      out,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
