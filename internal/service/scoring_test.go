package service

import (
	"testing"

	"career_path_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func orientationTest() *model.Test {
	return &model.Test{
		ID:       "career_orientation_basic",
		Title:    "Career Orientation",
		Category: "orientation",
		Questions: []model.Question{
			{
				ID:   "q1",
				Type: model.QuestionMultipleChoice,
				Answers: []model.Answer{
					{ID: "a1", Score: 5, Categories: []string{"social"}},
					{ID: "a2", Score: 5, Categories: []string{"technical"}},
					{ID: "a3", Score: 2, Categories: []string{"creative"}},
				},
			},
			{
				ID:         "q2",
				Type:       model.QuestionScale,
				Categories: []string{"analytical"},
			},
			{
				ID:   "q3",
				Type: model.QuestionText,
			},
		},
	}
}

func TestScoreTest(t *testing.T) {
	test := orientationTest()

	breakdown := ScoreTest(test, map[string]model.AnswerSubmission{
		"q1": {AnswerID: "a1"},
		"q2": {Value: 4},
	})

	assert.Equal(t, 9, breakdown.TotalScore)
	assert.Equal(t, map[string]int{"social": 5, "analytical": 4}, breakdown.CategoryScores)
}

func TestScoreTestSecondAttempt(t *testing.T) {
	test := orientationTest()

	breakdown := ScoreTest(test, map[string]model.AnswerSubmission{
		"q1": {AnswerID: "a2"},
		"q2": {Value: 2},
	})

	assert.Equal(t, 7, breakdown.TotalScore)
	assert.Equal(t, map[string]int{"technical": 5, "analytical": 2}, breakdown.CategoryScores)
}

func TestScoreTestEmptyAnswers(t *testing.T) {
	breakdown := ScoreTest(orientationTest(), map[string]model.AnswerSubmission{})

	assert.Equal(t, 0, breakdown.TotalScore)
	assert.Empty(t, breakdown.CategoryScores)
}

func TestScoreTestIgnoresStaleIDs(t *testing.T) {
	test := orientationTest()

	// Unknown question id and unknown answer id both contribute nothing.
	breakdown := ScoreTest(test, map[string]model.AnswerSubmission{
		"q_removed": {AnswerID: "a1"},
		"q1":        {AnswerID: "a_removed"},
		"q2":        {Value: 3},
	})

	assert.Equal(t, 3, breakdown.TotalScore)
	assert.Equal(t, map[string]int{"analytical": 3}, breakdown.CategoryScores)
}

func TestScoreTestTextContributesNothing(t *testing.T) {
	breakdown := ScoreTest(orientationTest(), map[string]model.AnswerSubmission{
		"q3": {Value: "I enjoy building things"},
	})

	assert.Equal(t, 0, breakdown.TotalScore)
	assert.Empty(t, breakdown.CategoryScores)
}

func TestScoreTestDroppingAnswerNeverRaisesTotal(t *testing.T) {
	test := orientationTest()
	full := map[string]model.AnswerSubmission{
		"q1": {AnswerID: "a1"},
		"q2": {Value: 5},
	}
	fullScore := ScoreTest(test, full).TotalScore

	for dropped := range full {
		partial := make(map[string]model.AnswerSubmission)
		for id, sub := range full {
			if id != dropped {
				partial[id] = sub
			}
		}
		assert.LessOrEqual(t, ScoreTest(test, partial).TotalScore, fullScore)
	}
}

func TestScaleValueParsing(t *testing.T) {
	test := orientationTest()

	cases := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 4, 4},
		{"float from json", float64(3), 3},
		{"numeric string", "5", 5},
		{"garbage string", "often", 0},
		{"nil", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown := ScoreTest(test, map[string]model.AnswerSubmission{
				"q2": {Value: tc.value},
			})
			assert.Equal(t, tc.want, breakdown.TotalScore)
		})
	}
}

func TestMaxPossibleScore(t *testing.T) {
	// Best multiple_choice answer (5) plus the scale ceiling (5); the
	// text question adds nothing.
	assert.Equal(t, 10, MaxPossibleScore(orientationTest()))
}

func TestMaxPossibleScoreEmptyTest(t *testing.T) {
	assert.Equal(t, 0, MaxPossibleScore(&model.Test{ID: "empty"}))
}
