package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hrtrack/internal/domain"
	"hrtrack/internal/present"
	"hrtrack/internal/screens"
	"hrtrack/internal/state"
)

func interviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interviews",
		Aliases: []string{"interview", "i"},
		Short:   "Plan interviews and record their outcome",
	}
	cmd.AddCommand(
		interviewScheduleCmd(), interviewShowCmd(),
		interviewSetDateCmd(), interviewSetStatusCmd(), interviewFeedbackCmd(), interviewPanelCmd(),
	)
	return cmd
}

func interviewScheduleCmd() *cobra.Command {
	var (
		staff    int64
		from, to string
	)
	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "List interviews by day (yours unless --staff is given)",
		Args:    cobra.NoArgs,
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.InterviewFilter{StaffID: domain.ID(staff)}
			if from != "" {
				t, err := parseTime(from)
				if err != nil {
					return err
				}
				filter.From = &t
			}
			if to != "" {
				t, err := parseTime(to)
				if err != nil {
					return err
				}
				filter.To = &t
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				s := appCtx.InterviewSchedule(scope)
				if err := s.Load(ctx, filter.StaffID, filter.From, filter.To); err != nil {
					return err
				}
				return present.Schedule(cmd.OutOrStdout(), s.State().Value, appCtx.Location)
			})
		},
	}
	cmd.Flags().Int64Var(&staff, "staff", 0, "staff id (default: you)")
	cmd.Flags().StringVar(&from, "from", "", "window start, inclusive (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&to, "to", "", "window end, exclusive (YYYY-MM-DD or RFC 3339)")
	return cmd
}

func interviewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one interview",
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInterview(cmd, args[0], nil)
		},
	}
}

func interviewSetDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set-date <id> <time>",
		Short:   "Schedule an interview (RFC 3339 or \"YYYY-MM-DD HH:MM\" local)",
		Args:    cobra.ExactArgs(2),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseTime(args[1])
			if err != nil {
				return err
			}
			return withInterview(cmd, args[0], func(ctx context.Context, d *screens.InterviewDetails) error {
				return d.SetDate(ctx, when)
			})
		},
	}
}

func interviewSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set-status <id> <status>",
		Short:   "Record an outcome: SCHEDULED, PASSED, FAILED or CANCELED",
		Args:    cobra.ExactArgs(2),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.InterviewStatus(strings.ToUpper(strings.TrimSpace(args[1])))
			if !status.Valid() {
				return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidArgument, args[1])
			}
			return withInterview(cmd, args[0], func(ctx context.Context, d *screens.InterviewDetails) error {
				return d.SetStatus(ctx, status)
			})
		},
	}
}

func interviewFeedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "feedback <id> <text>...",
		Short:   "Replace the interview feedback",
		Args:    cobra.MinimumNArgs(2),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			return withInterview(cmd, args[0], func(ctx context.Context, d *screens.InterviewDetails) error {
				return d.SetFeedback(ctx, text)
			})
		},
	}
}

func interviewPanelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "panel <id> <staffId>...",
		Short:   "Replace the interviewers",
		Args:    cobra.MinimumNArgs(2),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]domain.ID, 0, len(args)-1)
			for _, a := range args[1:] {
				id, err := parseID("staff", a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return withInterview(cmd, args[0], func(ctx context.Context, d *screens.InterviewDetails) error {
				return d.SetInterviewers(ctx, ids)
			})
		},
	}
}

// withInterview loads the interview, applies edit when given and prints the
// result.
func withInterview(cmd *cobra.Command, rawID string, edit func(context.Context, *screens.InterviewDetails) error) error {
	id, err := parseID("interview", rawID)
	if err != nil {
		return err
	}
	return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
		d := appCtx.InterviewDetails(scope)
		if err := d.Load(ctx, id); err != nil {
			return err
		}
		if edit != nil {
			if err := edit(ctx, d); err != nil {
				return err
			}
		}
		return present.Interview(cmd.OutOrStdout(), d.State().Value, appCtx.Location)
	})
}
