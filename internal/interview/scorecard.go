package interview

import (
	"sort"

	"github.com/srinivas0721/InterviewBot/pkg"
	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// Scorecard is the aggregated outcome of a completed session.
type Scorecard struct {
	Overall        float64
	CategoryScores map[string]float64
	Strengths      []string
	Weaknesses     []string
}

// BuildScorecard averages the per-answer scores into an overall score and
// per-category means, then derives strengths and weaknesses from them.
// Category membership comes from the question each answer belongs to.
func BuildScorecard(questions []model.Question, answers []model.Answer) Scorecard {
	if len(answers) == 0 {
		return Scorecard{
			CategoryScores: map[string]float64{},
			Strengths:      []string{"No responses provided"},
			Weaknesses:     []string{"Session incomplete"},
		}
	}

	categoryByQuestion := make(map[string]string, len(questions))
	for _, q := range questions {
		categoryByQuestion[q.QuestionID.String()] = string(q.Category)
	}

	var total float64
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range answers {
		score := 0.0
		if a.Score != nil {
			score = *a.Score
		}
		total += score

		cat := categoryByQuestion[a.QuestionID.String()]
		if cat == "" {
			cat = string(model.CategoryTechnical)
		}
		sums[cat] += score
		counts[cat]++
	}

	overall := pkg.Round1(total / float64(len(answers)))
	categoryScores := make(map[string]float64, len(sums))
	for cat, sum := range sums {
		categoryScores[cat] = pkg.Round1(sum / float64(counts[cat]))
	}

	strengths, weaknesses := deriveInsights(overall, categoryScores)

	return Scorecard{
		Overall:        overall,
		CategoryScores: categoryScores,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
	}
}

// deriveInsights maps score bands to human-readable takeaways. Categories are
// walked in sorted order so the output is stable across runs.
func deriveInsights(overall float64, categoryScores map[string]float64) (strengths, weaknesses []string) {
	categories := make([]string, 0, len(categoryScores))
	for cat := range categoryScores {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		score := categoryScores[cat]
		switch {
		case score >= 8.0:
			strengths = append(strengths, "Excellent "+cat+" knowledge")
		case score >= 6.0:
			strengths = append(strengths, "Good "+cat+" understanding")
		case score <= 4.0:
			weaknesses = append(weaknesses, "Needs improvement in "+cat)
		default:
			weaknesses = append(weaknesses, "Room for growth in "+cat)
		}
	}

	switch {
	case overall >= 8.0:
		strengths = append(strengths, "Strong technical communication", "Well-structured responses")
	case overall >= 6.0:
		strengths = append(strengths, "Shows technical potential")
	case overall >= 4.0:
		weaknesses = append(weaknesses, "Lacks detail in technical explanations", "Needs more preparation")
	default:
		weaknesses = append(weaknesses, "Insufficient technical depth", "Poor interview readiness")
	}

	if len(strengths) == 0 {
		strengths = []string{"Shows willingness to engage with questions"}
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{"Minor areas for refinement"}
	}
	return strengths, weaknesses
}

// Progress reports how far along a session is.
func Progress(answered, total int) model.Progress {
	return model.Progress{
		Current:   answered,
		Total:     total,
		Completed: total > 0 && answered >= total,
	}
}
