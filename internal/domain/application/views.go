package application

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel dropdown value that disables a predicate.
const FilterAll = "All"

// Filters is the set of independent list predicates. A record is kept only
// when it satisfies every active predicate (set intersection). Empty or
// "All" disables the corresponding predicate.
type Filters struct {
	JobType  string
	Status   string
	Company  string
	Location string
	Search   string
}

func (f Filters) active(v string) bool {
	return v != "" && v != FilterAll
}

// Filter returns the subset of apps matching f, preserving input order.
func Filter(apps []*Application, f Filters) []*Application {
	out := make([]*Application, 0, len(apps))
	term := strings.ToLower(f.Search)

	for _, app := range apps {
		if f.active(f.JobType) && string(app.JobType) != f.JobType {
			continue
		}
		if f.active(f.Status) && string(app.Status) != f.Status {
			continue
		}
		if f.active(f.Company) && app.Company != f.Company {
			continue
		}
		if f.active(f.Location) && app.Location != f.Location {
			continue
		}
		if term != "" && !matchesSearch(app, term) {
			continue
		}
		out = append(out, app)
	}
	return out
}

// matchesSearch checks role, company and location; any one containing the
// term is a match.
func matchesSearch(app *Application, lowerTerm string) bool {
	for _, field := range []string{app.JobRole, app.Company, app.Location} {
		if strings.Contains(strings.ToLower(field), lowerTerm) {
			return true
		}
	}
	return false
}

// SortByDate returns a new slice ordered by application date. The sort is
// stable, so records sharing a date keep their relative order.
func SortByDate(apps []*Application, asc bool) []*Application {
	out := make([]*Application, len(apps))
	copy(out, apps)
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].ApplicationDate.Before(out[j].ApplicationDate)
		}
		return out[i].ApplicationDate.After(out[j].ApplicationDate)
	})
	return out
}

// Companies returns the distinct company names in first-seen order,
// feeding the filter dropdown.
func Companies(apps []*Application) []string {
	return distinct(apps, func(a *Application) string { return a.Company })
}

// Locations returns the distinct non-empty locations in first-seen order.
func Locations(apps []*Application) []string {
	return distinct(apps, func(a *Application) string { return a.Location })
}

func distinct(apps []*Application, key func(*Application) string) []string {
	seen := make(map[string]struct{}, len(apps))
	out := make([]string, 0, len(apps))
	for _, app := range apps {
		k := key(app)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// CountByStatus produces the dashboard summary card counts.
func CountByStatus(apps []*Application) map[Status]int {
	counts := make(map[Status]int, len(AllStatuses))
	for _, s := range AllStatuses {
		counts[s] = 0
	}
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}
