package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineBuckets_Day(t *testing.T) {
	apps := []*Application{
		mkApp("A", "X", "", JobTypeRemote, StatusApplied, "2024-01-10"),
		mkApp("B", "X", "", JobTypeRemote, StatusApplied, "2024-01-10"),
		mkApp("C", "X", "", JobTypeRemote, StatusApplied, "2024-01-12"),
	}

	buckets := TimelineBuckets(apps, GroupByDay)

	require.Len(t, buckets, 2)
	assert.Equal(t, TimelineBucket{Key: "2024-01-10", Count: 2}, buckets[0])
	assert.Equal(t, TimelineBucket{Key: "2024-01-12", Count: 1}, buckets[1])
}

func TestTimelineBuckets_WeekStartsOnSunday(t *testing.T) {
	// 2024-01-10 is a Wednesday; its week starts Sunday 2024-01-07.
	// 2024-01-07 itself is a Sunday and stays put.
	// 2024-01-13 is a Saturday, still in the same week.
	// 2024-01-14 is the next Sunday.
	apps := []*Application{
		mkApp("A", "X", "", JobTypeRemote, StatusApplied, "2024-01-10"),
		mkApp("B", "X", "", JobTypeRemote, StatusApplied, "2024-01-07"),
		mkApp("C", "X", "", JobTypeRemote, StatusApplied, "2024-01-13"),
		mkApp("D", "X", "", JobTypeRemote, StatusApplied, "2024-01-14"),
	}

	buckets := TimelineBuckets(apps, GroupByWeek)

	require.Len(t, buckets, 2)
	assert.Equal(t, TimelineBucket{Key: "2024-01-07", Count: 3}, buckets[0])
	assert.Equal(t, TimelineBucket{Key: "2024-01-14", Count: 1}, buckets[1])
}

func TestTimelineBuckets_Month(t *testing.T) {
	apps := []*Application{
		mkApp("A", "X", "", JobTypeRemote, StatusApplied, "2024-01-10"),
		mkApp("B", "X", "", JobTypeRemote, StatusApplied, "2024-01-31"),
		mkApp("C", "X", "", JobTypeRemote, StatusApplied, "2024-02-01"),
	}

	buckets := TimelineBuckets(apps, GroupByMonth)

	require.Len(t, buckets, 2)
	assert.Equal(t, TimelineBucket{Key: "2024-01", Count: 2}, buckets[0])
	assert.Equal(t, TimelineBucket{Key: "2024-02", Count: 1}, buckets[1])
}

func TestTimelineBuckets_IsAPartition(t *testing.T) {
	apps := sampleApps()

	for _, g := range []Grouping{GroupByDay, GroupByWeek, GroupByMonth} {
		total := 0
		for _, b := range TimelineBuckets(apps, g) {
			assert.NotZero(t, b.Count, "empty buckets must not appear")
			total += b.Count
		}
		assert.Equal(t, len(apps), total, "grouping %s must partition the input", g)
	}
}

func TestTimelineBuckets_SkipsZeroDates(t *testing.T) {
	apps := []*Application{
		{JobRole: "A"},
		mkApp("B", "X", "", JobTypeRemote, StatusApplied, "2024-01-10"),
	}

	buckets := TimelineBuckets(apps, GroupByDay)
	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Count)
}

func TestStatusByType_Crosstab(t *testing.T) {
	apps := []*Application{
		mkApp("A", "X", "", JobTypeRemote, StatusApplied, "2024-01-10"),
		mkApp("B", "X", "", JobTypeRemote, StatusApplied, "2024-01-11"),
		mkApp("C", "X", "", JobTypeOnsite, StatusApplied, "2024-01-12"),
		mkApp("D", "X", "", JobTypeHybrid, StatusOffer, "2024-01-13"),
	}

	rows := StatusByType(apps)

	require.Len(t, rows, len(AllStatuses))
	assert.Equal(t, StatusApplied, rows[0].Status)
	assert.Equal(t, 2, rows[0].Counts["Remote"])
	assert.Equal(t, 1, rows[0].Counts["Onsite"])
	assert.Equal(t, 0, rows[0].Counts["Hybrid"])

	assert.Equal(t, StatusOffer, rows[2].Status)
	assert.Equal(t, 1, rows[2].Counts["Hybrid"])

	// Rows for statuses with no records exist with all-zero counts.
	assert.Equal(t, StatusRejected, rows[3].Status)
	for _, jt := range AllJobTypes {
		assert.Equal(t, 0, rows[3].Counts[string(jt)])
	}
}

func TestGroupingValid(t *testing.T) {
	assert.True(t, GroupByDay.Valid())
	assert.True(t, GroupByWeek.Valid())
	assert.True(t, GroupByMonth.Valid())
	assert.False(t, Grouping("year").Valid())
}
