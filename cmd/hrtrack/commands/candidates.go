package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hrtrack/internal/domain"
	"hrtrack/internal/present"
	"hrtrack/internal/state"
)

func candidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"candidate", "c"},
		Short:   "Search and inspect candidates",
	}
	cmd.AddCommand(candidateSearchCmd(), candidateShowCmd(), candidateResumeCmd(), candidateAddCmd())
	return cmd
}

func candidateSearchCmd() *cobra.Command {
	var (
		tags  []int64
		pages int
	)
	cmd := &cobra.Command{
		Use:     "search [query]",
		Short:   "Search candidates by name, email or city",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				s := appCtx.CandidateSearch(scope)
				if err := s.Search(ctx, query, toIDs(tags)); err != nil {
					return err
				}
				if pages > 1 {
					if err := s.LoadPages(ctx, pages-1); err != nil {
						return err
					}
				}
				return present.Candidates(cmd.OutOrStdout(), s.State().Value)
			})
		},
	}
	cmd.Flags().Int64SliceVar(&tags, "tag", nil, "only candidates with this tag id (repeatable)")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")
	return cmd
}

func candidateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a candidate with tags, resumes and tracks",
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("candidate", args[0])
			if err != nil {
				return err
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				d := appCtx.CandidateDetails(scope)
				if err := d.Load(ctx, id); err != nil {
					return err
				}
				return present.CandidateCard(cmd.OutOrStdout(), d.State().Value)
			})
		},
	}
}

func candidateResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resume <resumeId>",
		Short:   "Print the text of a PDF resume",
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resume", args[0])
			if err != nil {
				return err
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				text, err := appCtx.CandidateDetails(scope).ResumeText(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			})
		},
	}
}

func candidateAddCmd() *cobra.Command {
	var c domain.Candidate
	var tags []int64
	cmd := &cobra.Command{
		Use:     "add <first> <last>",
		Short:   "Register a new candidate",
		Args:    cobra.ExactArgs(2),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.FirstName, c.LastName = args[0], args[1]
			c.TagIDs = toIDs(tags)
			created, err := appCtx.Candidates.Create(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created candidate %d\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&c.Email, "email", "", "email address")
	cmd.Flags().StringVar(&c.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&c.City, "city", "", "city")
	cmd.Flags().StringVar(&c.Description, "about", "", "free-form description")
	cmd.Flags().Int64SliceVar(&tags, "tag", nil, "tag id (repeatable)")
	return cmd
}
