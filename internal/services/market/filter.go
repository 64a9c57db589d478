package market

import (
	"sort"
	"strings"

	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
)

// FilterUniverse narrows a universe (or watchlist projection) by name
// substring, sector, and industry. Empty filters match everything, so
// filtering with zero options returns the universe unchanged. The name
// match is case-insensitive; sector and industry are exact.
func FilterUniverse(universe []models.InstrumentSnapshot, opts interfaces.FilterOptions) []models.InstrumentSnapshot {
	if opts.Name == "" && opts.Sector == "" && opts.Industry == "" {
		return universe
	}

	name := strings.ToLower(opts.Name)
	filtered := make([]models.InstrumentSnapshot, 0, len(universe))
	for _, snap := range universe {
		if name != "" && !strings.Contains(strings.ToLower(snap.Name), name) {
			continue
		}
		if opts.Sector != "" && snap.Sector != opts.Sector {
			continue
		}
		if opts.Industry != "" && snap.Industry != opts.Industry {
			continue
		}
		filtered = append(filtered, snap)
	}
	return filtered
}

// DistinctSectors returns the distinct sector values in a universe, sorted
// for a stable presentation order. Empty values are skipped.
func DistinctSectors(universe []models.InstrumentSnapshot) []string {
	return distinct(universe, func(s *models.InstrumentSnapshot) string { return s.Sector })
}

// DistinctIndustries returns the distinct industry values in a universe,
// sorted. Empty values are skipped.
func DistinctIndustries(universe []models.InstrumentSnapshot) []string {
	return distinct(universe, func(s *models.InstrumentSnapshot) string { return s.Industry })
}

func distinct(universe []models.InstrumentSnapshot, field func(*models.InstrumentSnapshot) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for i := range universe {
		v := field(&universe[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
