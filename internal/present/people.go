package present

import (
	"fmt"
	"io"

	"hrtrack/internal/domain"
	"hrtrack/internal/screens"
	"hrtrack/internal/state"
)

// Candidates renders a candidate list with a paging footer.
func Candidates(w io.Writer, p state.Pages[domain.Candidate]) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCITY")
	for _, c := range p.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.FullName(), orDash(c.Email), orDash(c.City))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	footer(w, len(p.Items), p.Total, p.EndReached)
	return nil
}

func footer(w io.Writer, shown, total int, end bool) {
	switch {
	case shown == 0:
		fmt.Fprintln(w, faint.Sprint("no results"))
	case end:
		fmt.Fprintln(w, faint.Sprintf("%d shown", shown))
	default:
		fmt.Fprintln(w, faint.Sprintf("%d of %d shown, more available", shown, total))
	}
}

// CandidateCard renders one candidate with tags, resumes and tracks.
func CandidateCard(w io.Writer, v screens.CandidateView) error {
	c := v.Candidate
	heading(w, fmt.Sprintf("%s (#%d)", c.FullName(), c.ID))
	tw := table(w)
	field(tw, "email", orDash(c.Email))
	field(tw, "phone", orDash(c.Phone))
	field(tw, "city", orDash(c.City))
	field(tw, "tags", tagNames(v.Tags))
	if c.Description != "" {
		field(tw, "about", c.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(v.Resumes) > 0 {
		heading(w, "Resumes")
		tw = table(w)
		for _, r := range v.Resumes {
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", r.ID, r.FileName, r.UploadedAt.Format(dateLayout))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if len(v.Tracks) > 0 {
		heading(w, "Tracks")
		tw = table(w)
		for _, t := range v.Tracks {
			fmt.Fprintf(tw, "  %d\tvacancy %d\t%s\n", t.ID, t.VacancyID, Status(t.Status))
		}
		return tw.Flush()
	}
	return nil
}

// StaffList renders staff members.
func StaffList(w io.Writer, staff []domain.Staff) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPOSITION")
	for _, s := range staff {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.FullName(), s.Email, orDash(s.Position))
	}
	return tw.Flush()
}

// Tags renders the tag dictionary.
func Tags(w io.Writer, tags []domain.Tag) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, t := range tags {
		fmt.Fprintf(tw, "%d\t%s\n", t.ID, t.Name)
	}
	return tw.Flush()
}

// Whoami renders the signed-in user.
func Whoami(w io.Writer, s domain.Session) {
	fmt.Fprintf(w, "%s <%s>", s.Staff.FullName(), s.Staff.Email)
	if s.Staff.Position != "" {
		fmt.Fprintf(w, ", %s", s.Staff.Position)
	}
	fmt.Fprintf(w, "\n%s\n", faint.Sprintf("signed in to %s since %s", s.BaseURL, s.CreatedAt.Format(dateLayout)))
}
