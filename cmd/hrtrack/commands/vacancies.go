package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hrtrack/internal/domain"
	"hrtrack/internal/present"
	"hrtrack/internal/screens"
	"hrtrack/internal/state"
)

func vacanciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vacancies",
		Aliases: []string{"vacancy", "v"},
		Short:   "Search, inspect and archive vacancies",
	}
	cmd.AddCommand(vacancySearchCmd(), vacancyShowCmd(), vacancyArchiveCmd())
	return cmd
}

func vacancySearchCmd() *cobra.Command {
	var (
		tags      []int64
		minSalary int64
		maxSalary int64
		archived  bool
		pages     int
	)
	cmd := &cobra.Command{
		Use:     "search [query]",
		Short:   "Search vacancies, then narrow by salary and tags",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minSalary > 0 && maxSalary > 0 && minSalary > maxSalary {
				return fmt.Errorf("%w: --min %d is above --max %d", domain.ErrInvalidArgument, minSalary, maxSalary)
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				l := appCtx.VacancyList(scope)
				if err := l.Search(ctx, query, archived); err != nil {
					return err
				}
				if pages > 1 {
					if err := l.LoadPages(ctx, pages-1); err != nil {
						return err
					}
				}
				l.SetFilter(screens.VacancyFilter{
					SalaryFrom:      minSalary,
					SalaryTo:        maxSalary,
					TagIDs:          toIDs(tags),
					IncludeArchived: archived,
				})
				return present.Vacancies(cmd.OutOrStdout(), l.Visible())
			})
		},
	}
	cmd.Flags().Int64SliceVar(&tags, "tag", nil, "only vacancies with this tag id (repeatable)")
	cmd.Flags().Int64Var(&minSalary, "min", 0, "lowest acceptable salary")
	cmd.Flags().Int64Var(&maxSalary, "max", 0, "highest acceptable salary")
	cmd.Flags().BoolVar(&archived, "archived", false, "include archived vacancies")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")
	return cmd
}

func vacancyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a vacancy with its staff, tags and pipeline",
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vacancy", args[0])
			if err != nil {
				return err
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				d := appCtx.VacancyDetails(scope)
				if err := d.Load(ctx, id); err != nil {
					return err
				}
				return present.VacancyCard(cmd.OutOrStdout(), d.State().Value)
			})
		},
	}
}

func vacancyArchiveCmd() *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:     "archive <id>",
		Short:   "Archive a vacancy (or restore it with --undo)",
		Args:    cobra.ExactArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vacancy", args[0])
			if err != nil {
				return err
			}
			return inScope(cmd, func(ctx context.Context, scope *state.Scope) error {
				d := appCtx.VacancyDetails(scope)
				if err := d.Load(ctx, id); err != nil {
					return err
				}
				if err := d.SetArchived(ctx, !undo); err != nil {
					return err
				}
				v := d.State().Value.Vacancy
				verb := "archived"
				if !v.Archived {
					verb = "restored"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "vacancy %d %s\n", v.ID, verb)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "restore an archived vacancy")
	return cmd
}
