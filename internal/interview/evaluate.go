package interview

import "github.com/srinivas0721/InterviewBot/pkg/model"

// SanitizeEvaluation overrides the model's verdict when the submitted answer
// is gibberish. LLMs occasionally hand out generous scores for keyboard
// mashing, so the detector gets the final word. Returns true when the
// evaluation was overridden.
func SanitizeEvaluation(answerText string, eval *model.EvaluationRes) bool {
	if !IsGibberish(answerText) {
		return false
	}

	eval.Score = 1.0
	eval.Feedback = "Your answer doesn't appear to address the question. Please provide a relevant technical response."
	eval.CorrectedAnswer = "Please provide a clear, structured answer that directly addresses the question asked."
	eval.MissingPoints = "The answer provided does not contain relevant technical content."
	return true
}

// ClampScore keeps scores on the 0-10 scale no matter what the model returns.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
