package present

import (
	"fmt"
	"io"

	"hrtrack/internal/domain"
	"hrtrack/internal/screens"
)

// Vacancies renders a vacancy list.
func Vacancies(w io.Writer, items []domain.Vacancy) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tTITLE\tCITY\tSALARY\t")
	for _, v := range items {
		mark := ""
		if v.Archived {
			mark = faint.Sprint("archived")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.Title, orDash(v.City), Salary(v), mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(w, faint.Sprint("no results"))
	}
	return nil
}

// VacancyCard renders one vacancy with its staff, tags and tracks.
func VacancyCard(w io.Writer, v screens.VacancyView) error {
	title := fmt.Sprintf("%s (#%d)", v.Vacancy.Title, v.Vacancy.ID)
	if v.Vacancy.Archived {
		title += " " + faint.Sprint("[archived]")
	}
	heading(w, title)
	tw := table(w)
	field(tw, "city", orDash(v.Vacancy.City))
	field(tw, "salary", Salary(v.Vacancy))
	field(tw, "tags", tagNames(v.Tags))
	for _, s := range v.Staff {
		field(tw, "staff", fmt.Sprintf("%s (%s)", s.FullName(), orDash(s.Position)))
	}
	if v.Vacancy.Description != "" {
		field(tw, "about", v.Vacancy.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(v.Tracks) == 0 {
		return nil
	}

	counts := make(map[domain.TrackStatus]int)
	for _, t := range v.Tracks {
		counts[t.Status]++
	}
	heading(w, "Pipeline")
	tw = table(w)
	for _, st := range []domain.TrackStatus{
		domain.TrackApplication, domain.TrackInProgress, domain.TrackHired, domain.TrackRejected,
	} {
		if counts[st] > 0 {
			fmt.Fprintf(tw, "  %s\t%d\n", Status(st), counts[st])
		}
	}
	return tw.Flush()
}
