// cmd/game/print.go
package main

import (
	"go-hex-terrain/internal/app"

	"github.com/spf13/cobra"
)

func printCmd(flags *mapFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Generate a map without a window and print one letter per cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			game, err := app.NewGame(opts, nil)
			if err != nil {
				return err
			}
			return game.Fprint(cmd.OutOrStdout())
		},
	}
}
