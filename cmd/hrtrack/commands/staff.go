package commands

import (
	"github.com/spf13/cobra"

	"hrtrack/internal/domain"
	"hrtrack/internal/present"
)

func staffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Look up colleagues",
	}
	var page int
	search := &cobra.Command{
		Use:     "search [query]",
		Short:   "Search staff by name or email",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := domain.StaffFilter{Page: page}
			if len(args) == 1 {
				f.Query = args[0]
			}
			res, err := appCtx.Staff.Search(cmd.Context(), f)
			if err != nil {
				return err
			}
			return present.StaffList(cmd.OutOrStdout(), res.Items)
		},
	}
	search.Flags().IntVar(&page, "page", 0, "zero-based page")
	cmd.AddCommand(search)
	return cmd
}

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tags",
		Short:   "List the tag dictionary",
		Args:    cobra.NoArgs,
		PreRunE: signedIn,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := appCtx.Vacancies.Tags(cmd.Context())
			if err != nil {
				return err
			}
			return present.Tags(cmd.OutOrStdout(), tags)
		},
	}
}
