package application

import "sort"

type Grouping string

const (
	GroupByDay   Grouping = "day"
	GroupByWeek  Grouping = "week"
	GroupByMonth Grouping = "month"
)

func (g Grouping) Valid() bool {
	switch g {
	case GroupByDay, GroupByWeek, GroupByMonth:
		return true
	}
	return false
}

type TimelineBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TimelineBuckets partitions apps by the calendar day, Sunday-starting
// week, or calendar month of their application date and returns the
// buckets in ascending key order. Keys sort lexically: YYYY-MM-DD for day
// and week (the week key is its Sunday), YYYY-MM for month. Buckets with
// no records are simply absent; there is no zero-fill between gaps.
func TimelineBuckets(apps []*Application, g Grouping) []TimelineBucket {
	counts := make(map[string]int)

	for _, app := range apps {
		date := app.ApplicationDate
		if date.IsZero() {
			continue
		}

		var key string
		switch g {
		case GroupByWeek:
			sunday := date.AddDate(0, 0, -int(date.Weekday()))
			key = sunday.Format(DateLayout)
		case GroupByMonth:
			key = date.Format("2006-01")
		default:
			key = date.Format(DateLayout)
		}
		counts[key]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]TimelineBucket, len(keys))
	for i, k := range keys {
		buckets[i] = TimelineBucket{Key: k, Count: counts[k]}
	}
	return buckets
}

// StatusTypeRow is one row of the status-by-job-type cross-tabulation: for
// a single status, the record count per job type. Suitable for a stacked
// bar rendering.
type StatusTypeRow struct {
	Status Status         `json:"status"`
	Counts map[string]int `json:"counts"`
}

// StatusByType cross-tabulates status against job type, one row per
// status in the canonical order, one counter per job type in each row.
func StatusByType(apps []*Application) []StatusTypeRow {
	rows := make([]StatusTypeRow, len(AllStatuses))
	index := make(map[Status]int, len(AllStatuses))

	for i, s := range AllStatuses {
		counts := make(map[string]int, len(AllJobTypes))
		for _, t := range AllJobTypes {
			counts[string(t)] = 0
		}
		rows[i] = StatusTypeRow{Status: s, Counts: counts}
		index[s] = i
	}

	for _, app := range apps {
		i, ok := index[app.Status]
		if !ok {
			continue
		}
		rows[i].Counts[string(app.JobType)]++
	}
	return rows
}
