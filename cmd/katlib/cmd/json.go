package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/utils/jsonx"
)

// readInput reads the file named by args[0], or stdin when absent or "-"
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.OperationFailed("katlib", "readInput", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("katlib", "readInput", args[0])
		}
		return "", errors.OperationFailed("katlib", "readInput", err)
	}
	return string(data), nil
}

func newJSONCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "JSON utilities",
	}

	pretty := &cobra.Command{
		Use:   "pretty [file]",
		Short: "Indent a JSON document by two spaces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := jsonx.PrettyPrint(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	var schemaFile string
	validate := &cobra.Command{
		Use:   "validate --schema schema.json [file]",
		Short: "Validate a JSON document against a JSON Schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := readInput(cmd, []string{schemaFile})
			if err != nil {
				return err
			}
			document, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if err := jsonx.ValidateSchema(schema, document); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	validate.Flags().StringVarP(&schemaFile, "schema", "s", "", "JSON Schema file")
	_ = validate.MarkFlagRequired("schema")

	cmd.AddCommand(pretty, validate)
	return cmd
}
