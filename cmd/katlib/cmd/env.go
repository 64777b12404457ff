package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LukasForst/katlib/utils/envx"
)

func newEnvCommand() *cobra.Command {
	var (
		dotenv []string
		def    string
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Environment utilities",
	}

	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Print an environment variable, failing when it is not set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(dotenv) > 0 {
				if err := envx.LoadDotEnv(dotenv...); err != nil {
					return err
				}
			}

			name := args[0]
			if cmd.Flags().Changed("default") {
				fmt.Fprintln(cmd.OutOrStdout(), envx.GetOrDefault(name, def))
				return nil
			}
			value, err := envx.Require(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	get.Flags().StringArrayVar(&dotenv, "dotenv", nil, ".env file to load first, repeatable")
	get.Flags().StringVar(&def, "default", "", "value printed when the variable is not set")

	cmd.AddCommand(get)
	return cmd
}
