package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/core/log"
	"github.com/LukasForst/katlib/utils/mapx"
	"github.com/LukasForst/katlib/utils/randx"
)

type samplerOptions struct {
	weights []string
	seed    uint64
}

func (s *samplerOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.weights, "weight", "w", nil, "item and weight as key=weight, repeatable")
	cmd.Flags().Uint64Var(&s.seed, "seed", 0, "seed for reproducible results (default: sampler.seed or random)")
	_ = cmd.MarkFlagRequired("weight")
}

// parseWeight splits "key=weight"; the last '=' separates the weight
func parseWeight(raw string) (string, float64, error) {
	i := strings.LastIndex(raw, "=")
	if i <= 0 {
		return "", 0, errors.InvalidInput("katlib", "parseWeight", raw, "key=weight")
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(raw[i+1:]), 64)
	if err != nil {
		return "", 0, errors.InvalidFormat("katlib", "parseWeight", err, "weight").WithDetail("input", raw)
	}
	return raw[:i], weight, nil
}

// table builds the ordered weight table. Repeated keys keep the last
// weight and are reported by mapx.
func (s *samplerOptions) table() (*mapx.LinkedMap[string, float64], error) {
	type parsed struct {
		key    string
		weight float64
	}
	items := make([]parsed, 0, len(s.weights))
	for _, raw := range s.weights {
		key, weight, err := parseWeight(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, parsed{key: key, weight: weight})
	}
	return mapx.AssocTransform(slices.Values(items), func(p parsed) (string, float64) {
		return p.key, p.weight
	}), nil
}

func (s *samplerOptions) source(cmd *cobra.Command, opts *globalOptions) randx.Source {
	if cmd.Flags().Changed("seed") {
		return randx.NewSeeded(s.seed)
	}
	if opts.cfg != nil && opts.cfg.Has("sampler.seed") {
		return randx.NewSeeded(uint64(opts.cfg.GetInt64("sampler.seed")))
	}
	return randx.Default()
}

func newPickCommand(opts *globalOptions) *cobra.Command {
	sampler := &samplerOptions{}
	var count int

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick items at random, proportionally to their weights",
		Example: `  katlib pick -w common=10 -w rare=1
  katlib pick -w a=1 -w b=2 --count 5 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.OutOfRange("katlib", "pick", count, 1, nil)
			}
			weights, err := sampler.table()
			if err != nil {
				return err
			}

			src := sampler.source(cmd, opts)
			for range count {
				item, err := randx.WeightedPick[string](weights, src)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			log.Debug("picked", log.Int("count", count), log.Int("items", weights.Len()))
			return nil
		},
	}
	sampler.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of independent picks")
	return cmd
}

func newOrderCommand(opts *globalOptions) *cobra.Command {
	sampler := &samplerOptions{}
	var normalizer float64

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Order items at random, heavier items tending to come first",
		Example: `  katlib order -w a=1 -w b=5 -w c=2 --normalizer 2`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := sampler.table()
			if err != nil {
				return err
			}
			for _, item := range randx.WeightedOrder[string](weights, normalizer, sampler.source(cmd, opts)) {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
	sampler.register(cmd)
	cmd.Flags().Float64Var(&normalizer, "normalizer", 1, "offset added to every random draw; larger values make the order follow the weights more closely")
	return cmd
}
