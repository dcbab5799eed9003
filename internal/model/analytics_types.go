package model

import "time"

// Read-side shapes returned by the analytics and result services.
// None of these are persisted.

type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

type TestListPage struct {
	Tests      []Test     `json:"tests"`
	Pagination Pagination `json:"pagination"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TestRef struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	CompletedCount int    `json:"completed_count"`
}

// CatalogStats summarizes the active test catalog.
type CatalogStats struct {
	TotalTests       int            `json:"total_tests"`
	ByDifficulty     map[string]int `json:"by_difficulty"`
	ByCategory       map[string]int `json:"by_category"`
	TotalCompletions int            `json:"total_completions"`
	MostPopular      []TestRef      `json:"most_popular"`
}

type RecentActivity struct {
	TestTitle   string    `json:"test_title"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// UserStats is the self-service statistics panel.
type UserStats struct {
	TestsCompleted   int                `json:"tests_completed"`
	AverageScore     int                `json:"average_score"`
	TotalTimeSpent   int                `json:"total_time_spent"` // minutes
	FavoriteCategory string             `json:"favorite_category,omitempty"`
	StrongestSkill   string             `json:"strongest_skill,omitempty"`
	ImprovementAreas []string           `json:"improvement_areas"`
	RecentActivity   []RecentActivity   `json:"recent_activity"`
	SkillBreakdown   map[string]float64 `json:"skill_breakdown,omitempty"`
}

// SharedResult is the public projection of a shared test result.
type SharedResult struct {
	ID             string         `json:"id"`
	TestTitle      string         `json:"test_title"`
	TestCategory   string         `json:"test_category"`
	TotalScore     int            `json:"total_score"`
	CategoryScores map[string]int `json:"category_scores"`
	TimeTaken      int            `json:"time_taken"`
	CompletedAt    time.Time      `json:"completed_at"`
	UserName       string         `json:"user_name"`
}

type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserName    string    `json:"user_name"`
	Score       int       `json:"score"`
	TimeTaken   int       `json:"time_taken"`
	CompletedAt time.Time `json:"completed_at"`
}

type Leaderboard struct {
	TestID  string             `json:"test_id"`
	Entries []LeaderboardEntry `json:"leaderboard"`
}

type MonthTrend struct {
	Month        string `json:"month"`
	Attempts     int    `json:"attempts"`
	AverageScore int    `json:"average_score"`
}

type CategoryAnalytics struct {
	Category          string         `json:"category"`
	TotalAttempts     int            `json:"total_attempts"`
	AverageScore      int            `json:"average_score"`
	AverageTime       int            `json:"average_time"`
	ScoreDistribution map[string]int `json:"score_distribution"`
	Trends            []MonthTrend   `json:"trends"`
}

type CategoryComparison struct {
	UserScore         int     `json:"user_score"`
	AverageScore      float64 `json:"average_score"`
	BetterThanAverage bool    `json:"better_than_average"`
	Percentile        int     `json:"percentile"`
}

// CompareReport ranks the caller's best attempt against everyone else's.
type CompareReport struct {
	UserScore          int                           `json:"user_score"`
	UserTime           int                           `json:"user_time"`
	Percentile         int                           `json:"percentile"`
	TotalParticipants  int                           `json:"total_participants"`
	AverageScore       int                           `json:"average_score"`
	AverageTime        int                           `json:"average_time"`
	CategoryComparison map[string]CategoryComparison `json:"category_comparison,omitempty"`
	Comparison         string                        `json:"comparison,omitempty"`
}

type DailyBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type PlatformOverview struct {
	TotalUsers            int              `json:"total_users"`
	TotalTests            int              `json:"total_tests"`
	TotalResults          int              `json:"total_results"`
	TopTests              []TestRef        `json:"top_tests"`
	AverageResultsPerUser int              `json:"average_results_per_user"`
	RecentActivity        []RecentActivity `json:"recent_activity"`
	DailyActivity         []DailyBucket    `json:"daily_activity"`
}

type TestAnalytics struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Difficulty     Difficulty `json:"difficulty"`
	TotalAttempts  int        `json:"total_attempts"`
	AverageScore   int        `json:"average_score"`
	AverageTime    int        `json:"average_time"`
	CompletionRate int        `json:"completion_rate"` // percent
	LastAttempt    *time.Time `json:"last_attempt,omitempty"`
}

type TestAnalyticsReport struct {
	Tests   []TestAnalytics `json:"tests"`
	Summary struct {
		TotalTests     int            `json:"total_tests"`
		MostPopular    *TestAnalytics `json:"most_popular,omitempty"`
		HighestScoring *TestAnalytics `json:"highest_scoring,omitempty"`
	} `json:"summary"`
}

type UserAnalytics struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	JoinedAt         time.Time  `json:"joined_at"`
	TotalTests       int        `json:"total_tests"`
	AverageScore     int        `json:"average_score"`
	LastActivity     *time.Time `json:"last_activity,omitempty"`
	FavoriteCategory string     `json:"favorite_category,omitempty"`
}

type UserAnalyticsReport struct {
	Users   []UserAnalytics `json:"users"`
	Summary struct {
		TotalUsers          int `json:"total_users"`
		ActiveUsers30d      int `json:"active_users_30d"`
		NewUsersThisMonth   int `json:"new_users_this_month"`
		AverageTestsPerUser int `json:"average_tests_per_user"`
	} `json:"summary"`
}

type DailyPerformance struct {
	Date         string `json:"date"`
	Attempts     int    `json:"attempts"`
	AverageScore int    `json:"average_score"`
	AverageTime  int    `json:"average_time"`
}

type CategoryPerformance struct {
	Category     string `json:"category"`
	Attempts     int    `json:"attempts"`
	AverageScore int    `json:"average_score"`
	AverageTime  int    `json:"average_time"`
}

type PerformanceReport struct {
	PeriodDays          int                   `json:"period_days"`
	DailyPerformance    []DailyPerformance    `json:"daily_performance"`
	CategoryPerformance []CategoryPerformance `json:"category_performance"`
	Summary             struct {
		TotalAttempts       int `json:"total_attempts"`
		OverallAverageScore int `json:"overall_average_score"`
		OverallAverageTime  int `json:"overall_average_time"`
	} `json:"summary"`
}
