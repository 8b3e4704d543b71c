package application

import (
	"regexp"
	"strings"
	"time"
)

var jobURLPattern = regexp.MustCompile(`^https?://.+\..+`)

// ValidJobURL reports whether s looks like scheme://host.tld/... It is
// deliberately loose; the stored value is only ever rendered as a link.
func ValidJobURL(s string) bool {
	return jobURLPattern.MatchString(s)
}

// Validate runs the field-level rules for a create/update draft and
// returns a message per offending field. An empty map means the draft is
// acceptable. The future-date check compares calendar dates only; today's
// time of day never matters.
func (a *Application) Validate(today time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(a.JobRole) == "" {
		errs["jobRole"] = "Job role is required."
	}
	if strings.TrimSpace(a.Company) == "" {
		errs["company"] = "Company is required."
	}
	if !a.JobType.Valid() {
		errs["jobType"] = "Job type must be Remote, Onsite or Hybrid."
	}
	if !a.Status.Valid() {
		errs["status"] = "Status must be Applied, Interviewing, Offer or Rejected."
	}

	if a.ApplicationDate.IsZero() {
		errs["applicationDate"] = "Application date is required."
	} else {
		y, m, d := today.Date()
		todayDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		ay, am, ad := a.ApplicationDate.Date()
		appDate := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
		if appDate.After(todayDate) {
			errs["applicationDate"] = "Date cannot be in the future."
		}
	}

	if a.JobURL != "" && !ValidJobURL(a.JobURL) {
		errs["jobUrl"] = "Enter a valid job URL."
	}

	return errs
}
