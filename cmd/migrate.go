package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableAvailability/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				files, err := migrations.List()
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			a, err := newApp(cmd.Context(), *configPath, nil, false)
			if err != nil {
				return err
			}
			defer a.close()

			applied, err := migrations.Up(cmd.Context(), a.exec, a.log)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return err
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "only list embedded migrations")
	return cmd
}
