// internal/app/features/careers/wizard.go
package careers

import "github.com/launchpadjia/careerhub/internal/domain/models"

// MinInterviewQuestions is how many interview questions a career needs,
// summed across categories, before the wizard can move past the questions
// step or the posting can go live.
const MinInterviewQuestions = 5

// Wizard steps. Step 1 collects the posting basics, step 2 the pre-screening
// questions, step 3 the interview questions, step 4 is the review and
// publish step.
const (
	StepBasics       = 1
	StepPreScreening = 2
	StepQuestions    = 3
	StepReview       = 4
)

// CanAdvance reports whether the career has what the given wizard step
// requires before moving on, and if not, which requirement is unmet.
// Steps outside the wizard range never advance.
func CanAdvance(c models.Career, step int) (bool, string) {
	switch step {
	case StepBasics:
		if c.JobTitle == "" {
			return false, "Job title is required"
		}
		if c.Description == "" {
			return false, "Description is required"
		}
		if c.Location == "" {
			return false, "Location is required"
		}
		if c.WorkSetup == "" {
			return false, "Work setup is required"
		}
		return true, ""
	case StepPreScreening:
		// Pre-screening questions are optional.
		return true, ""
	case StepQuestions:
		if c.TotalQuestions() < MinInterviewQuestions {
			return false, "At least 5 interview questions are required"
		}
		return true, ""
	case StepReview:
		// Review is the last step; publishing is the only way forward.
		return false, "Review is the final step"
	default:
		return false, "Unknown step"
	}
}

// ReadyToPublish runs every gate a posting must pass before going live. It
// returns the full list of unmet requirements so the wizard can show them
// at once.
func ReadyToPublish(c models.Career) []string {
	var missing []string
	for _, step := range []int{StepBasics, StepPreScreening, StepQuestions} {
		if ok, reason := CanAdvance(c, step); !ok {
			missing = append(missing, reason)
		}
	}
	return missing
}
