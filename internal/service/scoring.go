package service

import (
	"strconv"

	"career_path_backend/internal/model"
)

// ScoreBreakdown is what a submission is worth: the grand total and the
// per-category accumulation. Categories can overlap per answer, so the
// category sums do not have to add up to the total.
type ScoreBreakdown struct {
	TotalScore     int            `json:"total_score"`
	CategoryScores map[string]int `json:"category_scores"`
}

// ScoreTest grades a submission against the stored test definition.
// Pure integer arithmetic: the same test and answers always produce the
// same breakdown. Unknown question ids and unknown answer ids contribute
// nothing instead of failing, so a stale client cannot abort scoring.
func ScoreTest(test *model.Test, answers map[string]model.AnswerSubmission) ScoreBreakdown {
	breakdown := ScoreBreakdown{CategoryScores: make(map[string]int)}

	for questionID, submission := range answers {
		question := test.FindQuestion(questionID)
		if question == nil {
			continue
		}

		switch question.Type {
		case model.QuestionMultipleChoice:
			answer := question.FindAnswer(submission.AnswerID)
			if answer == nil {
				continue
			}
			breakdown.TotalScore += answer.Score
			for _, category := range answer.Categories {
				breakdown.CategoryScores[category] += answer.Score
			}

		case model.QuestionScale:
			value := scaleValue(submission.Value)
			breakdown.TotalScore += value
			// Scale questions carry categories at question level.
			for _, category := range question.Categories {
				breakdown.CategoryScores[category] += value
			}

		case model.QuestionText:
			// Free text has no numeric score.
		}
	}

	return breakdown
}

// MaxPossibleScore is computed from the definition alone: the best answer
// of each multiple_choice question plus the fixed ceiling for each scale
// question.
func MaxPossibleScore(test *model.Test) int {
	max := 0
	for _, question := range test.Questions {
		switch question.Type {
		case model.QuestionMultipleChoice:
			best := 0
			for _, answer := range question.Answers {
				if answer.Score > best {
					best = answer.Score
				}
			}
			max += best
		case model.QuestionScale:
			max += model.ScaleCeiling
		}
	}
	return max
}

// scaleValue normalizes whatever the client sent for a scale question.
// Anything that does not parse as a number counts as 0.
func scaleValue(v any) int {
	switch value := v.(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
