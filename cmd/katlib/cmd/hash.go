package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LukasForst/katlib/core/log"
	"github.com/LukasForst/katlib/utils/hashx"
)

func newHashCommand() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "hash [file...]",
		Short: "Print base64 digests of files, or of stdin without arguments",
		Example: `  katlib hash go.mod
  echo -n hello | katlib hash --algo blake2b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := hashx.ParseAlgorithm(algo)
			if err != nil {
				return err
			}

			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				digest, err := hashx.Sum(algorithm, cmd.InOrStdin())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  -\n", digest)
				return nil
			}

			for _, path := range args {
				digest, err := hashx.File(algorithm, path)
				if err != nil {
					return err
				}
				if info, statErr := os.Stat(path); statErr == nil {
					log.Debug("hashed file",
						log.String("path", path),
						log.String("size", humanize.Bytes(uint64(info.Size()))),
						log.String("algorithm", string(algorithm)))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", digest, path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", string(hashx.SHA256), "digest: sha256, md5, sha3 or blake2b")
	return cmd
}
