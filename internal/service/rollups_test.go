package service

import (
	"testing"
	"time"

	"career_path_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultAt(ts time.Time, score, timeTaken int, category string) model.TestResult {
	r := model.TestResult{
		TestCategory: category,
		TotalScore:   score,
		TimeTaken:    timeTaken,
	}
	r.CreatedAt = ts
	return r
}

func TestPercentile(t *testing.T) {
	population := []int{10, 20, 30, 40}

	cases := []struct {
		target string
		score  int
		want   int
	}{
		{"top score", 40, 100},
		{"above everyone", 99, 100},
		{"middle", 30, 75},
		{"bottom", 10, 25},
		{"below everyone", 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			got, hasData := Percentile(population, tc.score)
			assert.True(t, hasData)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPercentileEmptyPopulation(t *testing.T) {
	got, hasData := Percentile(nil, 50)
	assert.Equal(t, 100, got)
	assert.False(t, hasData)
}

func TestPercentileTiesCountAsNotBetter(t *testing.T) {
	// Everyone shares the score: nobody is strictly better.
	got, hasData := Percentile([]int{5, 5, 5}, 5)
	assert.True(t, hasData)
	assert.Equal(t, 100, got)
}

func TestBuildLeaderboard(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	results := []model.TestResult{
		resultAt(base, 50, 300, "it"),
		resultAt(base, 80, 200, "it"),
		resultAt(base, 80, 150, "it"),
		resultAt(base, 70, 100, "it"),
	}
	results[0].UserID = 1
	results[1].UserID = 2
	results[2].UserID = 3
	results[3].UserID = 4

	entries := BuildLeaderboard(results, map[uint]string{1: "Ada", 2: "Ben", 3: "Cleo", 4: "Dag"}, 10)

	require.Len(t, entries, 4)
	// 80-point tie breaks on faster time; ranks stay dense.
	assert.Equal(t, []int{1, 2, 3, 4}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank, entries[3].Rank})
	assert.Equal(t, "Cleo", entries[0].UserName)
	assert.Equal(t, "Ben", entries[1].UserName)
	assert.Equal(t, "Dag", entries[2].UserName)
	assert.Equal(t, "Ada", entries[3].UserName)
}

func TestBuildLeaderboardLimitAndAnonymous(t *testing.T) {
	base := time.Now()
	results := []model.TestResult{
		resultAt(base, 10, 60, "it"),
		resultAt(base, 20, 60, "it"),
		resultAt(base, 30, 60, "it"),
	}

	entries := BuildLeaderboard(results, nil, 2)

	require.Len(t, entries, 2)
	assert.Equal(t, 30, entries[0].Score)
	assert.Equal(t, "Anonymous", entries[0].UserName)
}

func TestBucketDailySortedUTC(t *testing.T) {
	results := []model.TestResult{
		resultAt(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), 1, 1, ""),
		resultAt(time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC), 1, 1, ""),
		// 23:30 in UTC-3 is already March 2nd in UTC.
		resultAt(time.Date(2026, 3, 1, 23, 30, 0, 0, time.FixedZone("X", -3*3600)), 1, 1, ""),
	}

	buckets := BucketDaily(results)

	require.Len(t, buckets, 2)
	assert.Equal(t, model.DailyBucket{Date: "2026-03-01", Count: 1}, buckets[0])
	assert.Equal(t, model.DailyBucket{Date: "2026-03-02", Count: 2}, buckets[1])
}

func TestBucketMonthly(t *testing.T) {
	results := []model.TestResult{
		resultAt(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 10, 1, ""),
		resultAt(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), 21, 1, ""),
		resultAt(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 5, 1, ""),
	}

	trends := BucketMonthly(results)

	require.Len(t, trends, 2)
	assert.Equal(t, model.MonthTrend{Month: "2026-01", Attempts: 1, AverageScore: 5}, trends[0])
	// round(31/2) = 16
	assert.Equal(t, model.MonthTrend{Month: "2026-02", Attempts: 2, AverageScore: 16}, trends[1])
}

func TestFavoriteCategoryFirstEncounteredTie(t *testing.T) {
	base := time.Now()
	results := []model.TestResult{
		resultAt(base, 1, 1, "leadership"),
		resultAt(base, 1, 1, "it"),
		resultAt(base, 1, 1, "it"),
		resultAt(base, 1, 1, "leadership"),
	}

	assert.Equal(t, "leadership", FavoriteCategory(results))
}

func TestFavoriteCategorySkipsBlank(t *testing.T) {
	assert.Equal(t, "", FavoriteCategory([]model.TestResult{resultAt(time.Now(), 1, 1, "")}))
}

func TestSkillAveragesAndStrongest(t *testing.T) {
	results := []model.TestResult{
		{CategoryScores: map[string]int{"social": 5, "analytical": 4}},
		{CategoryScores: map[string]int{"technical": 5, "analytical": 2}},
	}

	averages, order := SkillAverages(results)

	assert.InDelta(t, 5.0, averages["social"], 1e-9)
	assert.InDelta(t, 3.0, averages["analytical"], 1e-9)
	// Keys inside one result are visited sorted, results in given order.
	assert.Equal(t, []string{"analytical", "social", "technical"}, order)

	// social and technical tie at 5; first encountered wins.
	assert.Equal(t, "social", StrongestSkill(results))
}

func TestCompletionRateZeroGuard(t *testing.T) {
	assert.Equal(t, 300, CompletionRate(3, 0))
	assert.Equal(t, 50, CompletionRate(1, 2))
	assert.Equal(t, 100, CompletionRate(4, 4))
}

func TestScoreDistribution(t *testing.T) {
	distribution := ScoreDistribution([]int{0, 5, 9, 10, 95})

	assert.Equal(t, map[string]int{
		"0-9":   3,
		"10-19": 1,
		"90-99": 1,
	}, distribution)
}

func TestDailyPerformanceRollup(t *testing.T) {
	day := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	results := []model.TestResult{
		resultAt(day, 10, 100, "it"),
		resultAt(day.Add(2*time.Hour), 20, 200, "it"),
		resultAt(day.AddDate(0, 0, 1), 30, 300, "leadership"),
	}

	rollup := DailyPerformanceRollup(results)

	require.Len(t, rollup, 2)
	assert.Equal(t, model.DailyPerformance{Date: "2026-04-01", Attempts: 2, AverageScore: 15, AverageTime: 150}, rollup[0])
	assert.Equal(t, model.DailyPerformance{Date: "2026-04-02", Attempts: 1, AverageScore: 30, AverageTime: 300}, rollup[1])
}

func TestCategoryPerformanceRollupKeepsEncounterOrder(t *testing.T) {
	base := time.Now()
	results := []model.TestResult{
		resultAt(base, 10, 100, "it"),
		resultAt(base, 20, 200, "leadership"),
		resultAt(base, 30, 300, "it"),
	}

	rollup := CategoryPerformanceRollup(results)

	require.Len(t, rollup, 2)
	assert.Equal(t, "it", rollup[0].Category)
	assert.Equal(t, 2, rollup[0].Attempts)
	assert.Equal(t, 20, rollup[0].AverageScore)
	assert.Equal(t, "leadership", rollup[1].Category)
}
