package service

import (
	"fmt"
	"math"
	"sort"

	"career_path_backend/internal/model"
)

// Pure read-side aggregations. Every function here takes the records it
// works on as arguments and touches neither the database nor the clock,
// which keeps the analytics endpoints trivially testable.

// roundDiv is round(sum/n) with a zero-count guard.
func roundDiv(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// Percentile places target inside population: the share of scores not
// strictly better, rounded to a whole percent. An empty population has
// nothing to compare against and reports 100.
func Percentile(population []int, target int) (percentile int, hasData bool) {
	if len(population) == 0 {
		return 100, false
	}
	better := 0
	for _, score := range population {
		if score > target {
			better++
		}
	}
	return int(math.Round(float64(len(population)-better) / float64(len(population)) * 100)), true
}

// BuildLeaderboard ranks shared results: score descending, time ascending
// on ties, dense 1-based ranks by position. names resolves user ids to
// display names; missing entries render as an anonymous placeholder.
func BuildLeaderboard(results []model.TestResult, names map[uint]string, limit int) []model.LeaderboardEntry {
	sorted := make([]model.TestResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalScore != sorted[j].TotalScore {
			return sorted[i].TotalScore > sorted[j].TotalScore
		}
		return sorted[i].TimeTaken < sorted[j].TimeTaken
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]model.LeaderboardEntry, 0, len(sorted))
	for i, result := range sorted {
		name := names[result.UserID]
		if name == "" {
			name = "Anonymous"
		}
		entries = append(entries, model.LeaderboardEntry{
			Rank:        i + 1,
			UserName:    name,
			Score:       result.TotalScore,
			TimeTaken:   result.TimeTaken,
			CompletedAt: result.CreatedAt,
		})
	}
	return entries
}

// BucketDaily groups by UTC calendar day; the ISO date key makes the
// ascending sort chronological.
func BucketDaily(results []model.TestResult) []model.DailyBucket {
	counts := make(map[string]int)
	for _, result := range results {
		counts[result.CreatedAt.UTC().Format("2006-01-02")]++
	}

	buckets := make([]model.DailyBucket, 0, len(counts))
	for date, count := range counts {
		buckets = append(buckets, model.DailyBucket{Date: date, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets
}

// BucketMonthly groups by UTC calendar month with attempt counts and
// average scores, ascending by month.
func BucketMonthly(results []model.TestResult) []model.MonthTrend {
	type acc struct {
		count int
		total int
	}
	months := make(map[string]*acc)
	for _, result := range results {
		key := result.CreatedAt.UTC().Format("2006-01")
		a := months[key]
		if a == nil {
			a = &acc{}
			months[key] = a
		}
		a.count++
		a.total += result.TotalScore
	}

	trends := make([]model.MonthTrend, 0, len(months))
	for month, a := range months {
		trends = append(trends, model.MonthTrend{
			Month:        month,
			Attempts:     a.count,
			AverageScore: roundDiv(a.total, a.count),
		})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

// DailyPerformanceRollup is the richer daily bucket with score and time
// averages, ascending by date.
func DailyPerformanceRollup(results []model.TestResult) []model.DailyPerformance {
	type acc struct {
		attempts  int
		score     int
		timeTaken int
	}
	days := make(map[string]*acc)
	for _, result := range results {
		key := result.CreatedAt.UTC().Format("2006-01-02")
		a := days[key]
		if a == nil {
			a = &acc{}
			days[key] = a
		}
		a.attempts++
		a.score += result.TotalScore
		a.timeTaken += result.TimeTaken
	}

	rollup := make([]model.DailyPerformance, 0, len(days))
	for date, a := range days {
		rollup = append(rollup, model.DailyPerformance{
			Date:         date,
			Attempts:     a.attempts,
			AverageScore: roundDiv(a.score, a.attempts),
			AverageTime:  roundDiv(a.timeTaken, a.attempts),
		})
	}
	sort.Slice(rollup, func(i, j int) bool { return rollup[i].Date < rollup[j].Date })
	return rollup
}

// CategoryPerformanceRollup aggregates per test category, in the order
// categories first appear in the (creation-ordered) input.
func CategoryPerformanceRollup(results []model.TestResult) []model.CategoryPerformance {
	type acc struct {
		attempts  int
		score     int
		timeTaken int
	}
	order := make([]string, 0)
	categories := make(map[string]*acc)
	for _, result := range results {
		a := categories[result.TestCategory]
		if a == nil {
			a = &acc{}
			categories[result.TestCategory] = a
			order = append(order, result.TestCategory)
		}
		a.attempts++
		a.score += result.TotalScore
		a.timeTaken += result.TimeTaken
	}

	rollup := make([]model.CategoryPerformance, 0, len(order))
	for _, category := range order {
		a := categories[category]
		rollup = append(rollup, model.CategoryPerformance{
			Category:     category,
			Attempts:     a.attempts,
			AverageScore: roundDiv(a.score, a.attempts),
			AverageTime:  roundDiv(a.timeTaken, a.attempts),
		})
	}
	return rollup
}

// FavoriteCategory is the most attempted test category. Ties go to the
// category encountered first, so pass results in creation order.
func FavoriteCategory(results []model.TestResult) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, result := range results {
		if result.TestCategory == "" {
			continue
		}
		if _, seen := counts[result.TestCategory]; !seen {
			order = append(order, result.TestCategory)
		}
		counts[result.TestCategory]++
	}

	favorite := ""
	best := 0
	for _, category := range order {
		if counts[category] > best {
			favorite = category
			best = counts[category]
		}
	}
	return favorite
}

// SkillAverages flattens every result's category scores into per-skill
// means, also reporting the order skills were first encountered in so
// callers can break ties deterministically.
func SkillAverages(results []model.TestResult) (map[string]float64, []string) {
	sums := make(map[string]int)
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, result := range results {
		for _, skill := range sortedKeys(result.CategoryScores) {
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			sums[skill] += result.CategoryScores[skill]
			counts[skill]++
		}
	}

	averages := make(map[string]float64, len(sums))
	for skill, sum := range sums {
		averages[skill] = float64(sum) / float64(counts[skill])
	}
	return averages, order
}

// StrongestSkill is the category with the highest mean score, first
// encountered winning ties.
func StrongestSkill(results []model.TestResult) string {
	averages, order := SkillAverages(results)

	strongest := ""
	best := math.Inf(-1)
	for _, skill := range order {
		if averages[skill] > best {
			strongest = skill
			best = averages[skill]
		}
	}
	return strongest
}

// CompletionRate is attempts over the test's completed counter as a
// percentage. A zero counter is treated as 1 for this ratio only, so a
// fresh test cannot divide by zero.
func CompletionRate(attempts, completedCount int) int {
	if completedCount <= 0 {
		completedCount = 1
	}
	return int(math.Round(float64(attempts) / float64(completedCount) * 100))
}

// ScoreDistribution buckets scores by decade ("0-9", "10-19", ...).
func ScoreDistribution(scores []int) map[string]int {
	distribution := make(map[string]int)
	for _, score := range scores {
		decade := score / 10 * 10
		key := fmt.Sprintf("%d-%d", decade, decade+9)
		distribution[key]++
	}
	return distribution
}

// sortedKeys makes map traversal deterministic.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
