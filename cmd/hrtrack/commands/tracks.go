package commands

import (
	"context"

	"github.com/spf13/cobra"

	"hrtrack/internal/present"
	"hrtrack/internal/screens"
	"hrtrack/internal/state"
)

func tracksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tracks",
		Aliases: []string{"track", "t"},
		Short:   "Move candidates through a vacancy's pipeline",
	}
	cmd.AddCommand(
		trackShowCmd(), trackApplicationsCmd(), trackApplyCmd(),
		trackTransitionCmd("approve", "Let an application into the interview stages", (*screens.TrackDetails).Approve),
		trackTransitionCmd("reject", "Close a track without a hire", (*screens.TrackDetails).Reject),
		trackTransitionCmd("hire", "Close a track with a hire", (*screens.TrackDetails).Hire),
	)
	return cmd
}

func trackShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a track with its interviews",
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTrack(cmd, args[0], nil)
		},
	}
}

func trackTransitionCmd(name, short string, step func(*screens.TrackDetails, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:     name + " <id>",
		Short:   short,
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTrack(cmd, args[0], step)
		},
	}
}

func withTrack(cmd *cobra.Command, rawID string, step func(*screens.TrackDetails, context.Context) error) error {
	id, err := parseID("track", rawID)
	if err != nil {
		return err
	}
	return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
		d := appCtx.TrackDetails(scope)
		if err := d.Load(ctx, id); err != nil {
			return err
		}
		if step != nil {
			if err := step(d, ctx); err != nil {
				return err
			}
		}
		return present.TrackCard(cmd.OutOrStdout(), d.State().Value, appCtx.Location)
	})
}

func trackApplicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "applications <vacancyId>",
		Short:   "List open applications to a vacancy",
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vacancy", args[0])
			if err != nil {
				return err
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				a := appCtx.Applications(scope)
				if err := a.Load(ctx, id); err != nil {
					return err
				}
				return present.Applications(cmd.OutOrStdout(), a.State().Value)
			})
		},
	}
}

func trackApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "apply <candidateId> <vacancyId>",
		Short:   "Open an application of a candidate to a vacancy",
		Args:    cobra.ExactArgs(2),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidateID, err := parseID("candidate", args[0])
			if err != nil {
				return err
			}
			vacancyID, err := parseID("vacancy", args[1])
			if err != nil {
				return err
			}
			t, err := appCtx.Tracks.Apply(cmd.Context(), candidateID, vacancyID)
			if err != nil {
				return err
			}
			present.TrackChanged(cmd.OutOrStdout(), t)
			return nil
		},
	}
}
