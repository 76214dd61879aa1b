package present

import (
	"fmt"
	"io"
	"time"

	"hrtrack/internal/domain"
	"hrtrack/internal/screens"
)

// Schedule renders interviews grouped by day, undated ones last.
func Schedule(w io.Writer, s screens.Schedule, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	heading(w, fmt.Sprintf("Interviews of %s", s.Staff.FullName()))
	if len(s.Days) == 0 && len(s.Undated) == 0 {
		fmt.Fprintln(w, faint.Sprint("nothing planned"))
		return nil
	}
	for _, d := range s.Days {
		fmt.Fprintln(w, d.Date.Format(dateLayout))
		tw := table(w)
		for _, iv := range d.Interviews {
			fmt.Fprintf(tw, "  %s\t#%d\t%s\t%s\n", iv.Date.In(loc).Format("15:04"), iv.ID, iv.Title, Status(iv.Status))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if len(s.Undated) > 0 {
		fmt.Fprintln(w, "Unscheduled")
		tw := table(w)
		for _, iv := range s.Undated {
			fmt.Fprintf(tw, "  -\t#%d\t%s\t%s\n", iv.ID, iv.Title, Status(iv.Status))
		}
		return tw.Flush()
	}
	return nil
}

// Interview renders one interview.
func Interview(w io.Writer, iv domain.Interview, loc *time.Location) error {
	heading(w, fmt.Sprintf("%s (#%d)", orDash(iv.Title), iv.ID))
	tw := table(w)
	field(tw, "status", Status(iv.Status))
	field(tw, "when", When(iv, loc))
	if iv.DurationMinutes > 0 {
		field(tw, "duration", fmt.Sprintf("%d min", iv.DurationMinutes))
	}
	field(tw, "track", iv.TrackID.String())
	field(tw, "interviewers", idList(iv.InterviewerIDs))
	field(tw, "feedback", orDash(iv.Feedback))
	return tw.Flush()
}

// TrackCard renders a track with its interview stages.
func TrackCard(w io.Writer, v screens.TrackView, loc *time.Location) error {
	heading(w, fmt.Sprintf("%s for %s (#%d)", v.Candidate.FullName(), v.Vacancy.Title, v.Track.ID))
	tw := table(w)
	field(tw, "status", Status(v.Track.Status))
	field(tw, "applied", v.Track.CreatedAt.Format(dateLayout))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(v.Interviews) == 0 {
		return nil
	}
	heading(w, "Interviews")
	tw = table(w)
	for _, iv := range v.Interviews {
		fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\n", iv.ID, iv.Title, When(iv, loc), Status(iv.Status))
	}
	return tw.Flush()
}

// Applications renders the open applications of a vacancy.
func Applications(w io.Writer, l screens.ApplicationList) error {
	if len(l.Tracks) == 0 {
		fmt.Fprintln(w, faint.Sprint("no open applications"))
		return nil
	}
	tw := table(w)
	fmt.Fprintln(tw, "TRACK\tCANDIDATE\tAPPLIED")
	for _, t := range l.Tracks {
		name := fmt.Sprintf("candidate %d", t.CandidateID)
		if c, ok := l.Candidates[t.CandidateID]; ok {
			name = c.FullName()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, name, t.CreatedAt.Format(dateLayout))
	}
	return tw.Flush()
}

// TrackChanged confirms a track transition.
func TrackChanged(w io.Writer, t domain.Track) {
	fmt.Fprintf(w, "track %d is now %s\n", t.ID, Status(t.Status))
}

func idList(ids []domain.ID) string {
	if len(ids) == 0 {
		return "-"
	}
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += ", "
		}
		s += id.String()
	}
	return s
}
