package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hrtrack/internal/domain"
	"hrtrack/internal/present"
)

func loginCmd() *cobra.Command {
	var (
		password string
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in and store the session sealed with your passphrase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := needPassphrase(); err != nil {
				return err
			}
			email := ""
			if len(args) == 1 {
				email = args[0]
			} else if p, err := appCtx.Profiles.LoadProfile(); err == nil {
				email = p.LastEmail
			}
			if email == "" {
				return fmt.Errorf("%w: email required", domain.ErrInvalidArgument)
			}
			if password == "" {
				var err error
				password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("password for %s: ", email))
				if err != nil {
					return err
				}
			}

			session, err := appCtx.Auth.Login(cmd.Context(), appCtx.Config.Passphrase, domain.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if pageSize > 0 {
				if err := appCtx.RememberPageSize(pageSize); err != nil {
					return err
				}
			}
			present.Whoami(cmd.OutOrStdout(), session)
			return nil
		},
	}
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "remember this page size for later runs")
	cmd.Flags().StringVar(&password, "password", os.Getenv("HRTRACK_PASSWORD"), "account password (prompted when empty)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := restore()
			if err != nil {
				return err
			}
			// Confirm the token is still accepted.
			me, err := appCtx.Staff.Me(cmd.Context())
			if err != nil {
				return err
			}
			session.Staff = me
			present.Whoami(cmd.OutOrStdout(), session)
			return nil
		},
	}
}
