package application

import "strings"

// CSVFilename is the download name offered to the browser.
const CSVFilename = "job_applications.csv"

var csvHeader = []string{
	"Job Role", "Company", "Job ID", "Job Type", "Status",
	"Application Date", "Location", "Resume URL", "Cover Letter URL", "Job Posting URL",
}

// ExportCSV serializes every record, unfiltered, one row each under a
// fixed header. Every field is wrapped in double quotes with internal
// quotes doubled; absent optionals render as empty quoted strings. The
// stdlib encoding/csv writer only quotes fields that need it, so the
// always-quoted format is produced by hand here.
func ExportCSV(apps []*Application) string {
	var b strings.Builder

	writeRow(&b, csvHeader)
	for _, app := range apps {
		date := ""
		if !app.ApplicationDate.IsZero() {
			date = app.ApplicationDate.Format(DateLayout)
		}
		writeRow(&b, []string{
			app.JobRole,
			app.Company,
			app.JobID,
			string(app.JobType),
			string(app.Status),
			date,
			app.Location,
			deref(app.ResumeURL),
			deref(app.CoverLetterURL),
			app.JobURL,
		})
	}

	// No trailing newline after the last row.
	return strings.TrimSuffix(b.String(), "\n")
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
