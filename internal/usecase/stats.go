package usecase

import (
	"sort"
	"time"

	"famtree/internal/domain"
)

// BirthdayCalendar groups members by (month, day) of birth, sorted ascending.
// Names inside a slot keep the order members were registered in.
func BirthdayCalendar(members []*domain.Person) []domain.CalendarEntry {
	type key struct {
		month int
		day   int
	}
	groups := make(map[key][]string)
	for _, p := range members {
		k := key{month: int(p.BirthDate().Month()), day: p.BirthDate().Day()}
		groups[k] = append(groups[k], p.Name())
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return keys[i].day < keys[j].day
	})

	out := make([]domain.CalendarEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.CalendarEntry{
			Month: time.Month(k.month),
			Day:   k.day,
			Names: groups[k],
		})
	}
	return out
}

// AverageAgeAtDeath averages the whole-year age of every deceased member.
// Age is the day count between birth and death divided by 365; leap years
// are deliberately not accounted for. Returns 0 with no deceased members.
func AverageAgeAtDeath(members []*domain.Person) float64 {
	total, count := 0, 0
	for _, p := range members {
		death, ok := p.DeathDate()
		if !ok {
			continue
		}
		days := int(death.Sub(p.BirthDate()).Hours() / 24)
		total += days / 365
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// ChildrenStatistics reports the child count per member and the unweighted
// average across all members, living and deceased alike.
func ChildrenStatistics(members []*domain.Person) (map[string]int, float64) {
	counts := make(map[string]int, len(members))
	total := 0
	for _, p := range members {
		n := len(p.Children())
		counts[p.Name()] = n
		total += n
	}
	if len(members) == 0 {
		return counts, 0
	}
	return counts, float64(total) / float64(len(members))
}
