package present

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"hrtrack/internal/domain"
)

var (
	bold    = color.New(color.Bold)
	faint   = color.New(color.Faint)
	good    = color.New(color.FgGreen)
	bad     = color.New(color.FgRed)
	pending = color.New(color.FgYellow)
	active  = color.New(color.FgCyan)
)

const dateLayout = "Mon 02 Jan 2006"

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Status colors a track or interview status.
func Status[S ~string](s S) string {
	switch domain.TrackStatus(s) {
	case domain.TrackHired:
		return good.Sprint(s)
	case domain.TrackRejected:
		return bad.Sprint(s)
	case domain.TrackApplication:
		return pending.Sprint(s)
	case domain.TrackInProgress:
		return active.Sprint(s)
	}
	switch domain.InterviewStatus(s) {
	case domain.InterviewPassed:
		return good.Sprint(s)
	case domain.InterviewFailed, domain.InterviewCanceled:
		return bad.Sprint(s)
	case domain.InterviewNotScheduled:
		return pending.Sprint(s)
	case domain.InterviewScheduled:
		return active.Sprint(s)
	}
	return string(s)
}

// Salary renders a vacancy's salary range, open on either side.
func Salary(v domain.Vacancy) string {
	cur := ""
	if v.Currency != "" {
		cur = " " + v.Currency
	}
	switch {
	case v.SalaryFrom > 0 && v.SalaryTo > 0:
		return fmt.Sprintf("%d-%d%s", v.SalaryFrom, v.SalaryTo, cur)
	case v.SalaryFrom > 0:
		return fmt.Sprintf("from %d%s", v.SalaryFrom, cur)
	case v.SalaryTo > 0:
		return fmt.Sprintf("up to %d%s", v.SalaryTo, cur)
	}
	return "-"
}

// When renders an interview date in loc, or "unscheduled".
func When(iv domain.Interview, loc *time.Location) string {
	if !iv.Scheduled() {
		return "unscheduled"
	}
	if loc == nil {
		loc = time.Local
	}
	return iv.Date.In(loc).Format("2006-01-02 15:04")
}

func tagNames(tags []domain.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return orDash(strings.Join(names, ", "))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, bold.Sprint(title))
}

func field(tw io.Writer, name, value string) {
	fmt.Fprintf(tw, "  %s\t%s\n", faint.Sprint(name), value)
}
