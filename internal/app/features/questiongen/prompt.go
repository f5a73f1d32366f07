// internal/app/features/questiongen/prompt.go
package questiongen

import (
	"fmt"
	"strings"
)

// categoryPrompts maps each interview question category to its instruction.
// The categories match the five wizard categories exactly.
var categoryPrompts = map[string]string{
	"CV Validation / Experience": "Generate 2 interview questions that validate the candidate's CV and work experience for the %s position. Focus on verifying their past roles, responsibilities, achievements, and relevant experience mentioned in their resume.",
	"Technical":                  "Generate 2 technical interview questions for a %s position. Focus on technical skills, tools, technologies, and problem-solving abilities relevant to this role.",
	"Behavioral":                 "Generate 2 behavioral interview questions for a %s position. Focus on soft skills, teamwork, conflict resolution, leadership, and how they handle workplace situations.",
	"Analytical":                 "Generate 2 analytical interview questions for a %s position. Focus on critical thinking, problem-solving approach, data analysis, and decision-making abilities.",
	"Others":                     "Generate 2 general interview questions for a %s position that don't fit into technical, behavioral, or analytical categories. Focus on motivation, culture fit, career goals, and other relevant aspects.",
}

// KnownCategory reports whether the category has a prompt template.
func KnownCategory(category string) bool {
	_, ok := categoryPrompts[category]
	return ok
}

// BuildPrompt assembles the generation prompt for one category. Existing
// questions are listed so the model avoids duplicates.
func BuildPrompt(jobTitle, description, category string, existing []string) string {
	var b strings.Builder

	b.WriteString("You are an expert HR interviewer and recruitment specialist. ")
	b.WriteString("Generate relevant, insightful interview questions based on job descriptions and categories. ")
	b.WriteString("Always return valid JSON arrays only.\n\n")

	fmt.Fprintf(&b, categoryPrompts[category], jobTitle)
	b.WriteString("\n\nJob Description:\n")
	b.WriteString(description)

	if len(existing) > 0 {
		b.WriteString("\n\nExisting questions (avoid duplicates):\n")
		b.WriteString(strings.Join(existing, "\n"))
	}

	b.WriteString("\n\nRequirements:\n")
	b.WriteString("- Generate exactly 2 questions\n")
	b.WriteString("- Make questions specific to the role and job description\n")
	b.WriteString("- Ensure questions are clear, professional, and relevant\n")
	b.WriteString("- Avoid duplicating existing questions\n")
	b.WriteString("- Return ONLY a JSON array of question strings, no additional text\n\n")
	b.WriteString(`Format: ["Question 1?", "Question 2?"]`)

	return b.String()
}
