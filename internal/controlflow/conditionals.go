// Package controlflow covers conditionals, loops, comprehensions and error
// handling.
package controlflow

type IfElseResult struct {
	Age         int    `json:"age" yaml:"age"`
	Category    string `json:"category" yaml:"category"`
	LegalStatus string `json:"legal_status" yaml:"legal_status"`
}

func IfElse(age int) IfElseResult {
	var category string
	switch {
	case age < 0:
		category = "Invalid age"
	case age < 13:
		category = "Child"
	case age < 20:
		category = "Teenager"
	case age < 60:
		category = "Adult"
	default:
		category = "Senior"
	}

	status := "Adult"
	if age < 18 {
		status = "Minor"
	}

	return IfElseResult{Age: age, Category: category, LegalStatus: status}
}

type GradeResult struct {
	Score   int    `json:"score" yaml:"score"`
	Grade   string `json:"grade" yaml:"grade"`
	Message string `json:"message" yaml:"message"`
}

func NestedConditions(score int) GradeResult {
	r := GradeResult{Score: score}
	if score < 0 || score > 100 {
		r.Grade, r.Message = "Invalid", "Score must be between 0 and 100"
		return r
	}

	switch {
	case score >= 90:
		r.Grade, r.Message = "A", "Excellent!"
	case score >= 80:
		r.Grade, r.Message = "B", "Good job!"
	case score >= 70:
		r.Grade, r.Message = "C", "Satisfactory"
	case score >= 60:
		r.Grade, r.Message = "D", "Needs improvement"
	default:
		r.Grade, r.Message = "F", "Failed"
	}
	return r
}
