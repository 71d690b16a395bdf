package interview

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/srinivas0721/InterviewBot/pkg"
	"github.com/srinivas0721/InterviewBot/pkg/model"
)

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Interview Report - {{.Session.Company}} {{.Session.Role}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .header { text-align: center; margin-bottom: 40px; }
        .section { margin-bottom: 30px; }
        .question { background: #f5f5f5; padding: 15px; margin: 20px 0; }
        .answer { background: #fff; padding: 15px; border-left: 4px solid #007acc; }
        .score { font-weight: bold; color: #007acc; }
        .feedback { font-style: italic; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Interview Report</h1>
        <h2>{{.Session.Company}} - {{.Session.Role}}</h2>
        <p>Completed: {{.CompletedAt}}</p>
        <p class="score">Overall Score: {{.Overall}}/10</p>
    </div>
    <div class="section">
        <h3>Summary</h3>
        <p><strong>Strengths:</strong> {{.Strengths}}</p>
        <p><strong>Areas for Improvement:</strong> {{.Weaknesses}}</p>
        <p><strong>Recommendations:</strong> {{.Recommendations}}</p>
    </div>
    <div class="section">
        <h3>Questions and Answers</h3>
        {{range .Items}}
        <div class="question">
            <h4>Question {{.Number}}</h4>
            <p><strong>Category:</strong> {{.Category}}</p>
            <p>{{.QuestionText}}</p>
        </div>
        {{if .Answered}}
        <div class="answer">
            <p><strong>Answer:</strong> {{.AnswerText}}</p>
            <p class="score">Score: {{.Score}}/10</p>
            <p class="feedback">Feedback: {{.Feedback}}</p>
        </div>
        {{end}}
        {{end}}
    </div>
</body>
</html>
`))

type reportItem struct {
	Number       int
	Category     string
	QuestionText string
	Answered     bool
	AnswerText   string
	Score        float64
	Feedback     string
}

type reportData struct {
	Session         *model.Session
	CompletedAt     string
	Overall         float64
	Strengths       string
	Weaknesses      string
	Recommendations string
	Items           []reportItem
}

// RenderReport builds the downloadable HTML report for a session.
func RenderReport(session *model.Session, questions []model.Question, answers []model.Answer) (string, error) {
	answerByQuestion := make(map[string]model.Answer, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID.String()] = a
	}

	items := make([]reportItem, 0, len(questions))
	for _, q := range questions {
		item := reportItem{
			Number:       q.QuestionNumber,
			Category:     pkg.CategoryLabel(string(q.Category)),
			QuestionText: q.QuestionText,
		}
		if a, ok := answerByQuestion[q.QuestionID.String()]; ok {
			item.Answered = true
			item.AnswerText = a.Text()
			if item.AnswerText == "" {
				item.AnswerText = "No answer provided"
			}
			if a.Score != nil {
				item.Score = *a.Score
			}
			item.Feedback = "No feedback provided"
			if a.Feedback != nil && *a.Feedback != "" {
				item.Feedback = *a.Feedback
			}
		}
		items = append(items, item)
	}

	completedAt := "N/A"
	if session.CompletedAt != nil {
		completedAt = session.CompletedAt.Format("January 2, 2006")
	}
	overall := 0.0
	if session.OverallScore != nil {
		overall = *session.OverallScore
	}

	data := reportData{
		Session:         session,
		CompletedAt:     completedAt,
		Overall:         overall,
		Strengths:       strings.Join(session.Strengths, ", "),
		Weaknesses:      strings.Join(session.Weaknesses, ", "),
		Recommendations: strings.Join(session.Recommendations, ", "),
		Items:           items,
	}

	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

// ReportDataURL wraps rendered HTML in a data: URL the frontend can offer as
// a download without another round trip.
func ReportDataURL(html string) string {
	return "data:text/html;charset=utf-8," + url.PathEscape(html)
}
