package cli

import (
	"fmt"
	"strings"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/raw"
	"github.com/spf13/cobra"
)

type normalizeResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Size   int    `json:"size" yaml:"size"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
}

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		orderName string
		asHex     bool
	)

	cmd := &cobra.Command{
		Use:   "normalize <in> <out>",
		Short: "Rewrite a geometry into one byte order",
		Long: `Rewrite every node of a geometry into one byte order. Nodes may start in
different orders; each is converted on its own. The output keeps the form of
the input (binary or hex) unless --hex is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parseByteOrder(orderName)
			if err != nil {
				return err
			}

			in, err := readInput(args[0])
			if err != nil {
				return err
			}

			from := ""
			if len(in.data) > 0 {
				from = format.ByteOrder(in.data[0]).String()
			}

			n, err := raw.NormalizeTo(in.data, order)
			if err != nil {
				return fmt.Errorf("normalize %s: %w", in.path, err)
			}
			if n != len(in.data) {
				return fmt.Errorf("normalize %s: %d bytes of excess data after geometry", in.path, len(in.data)-n)
			}

			if err := writeOutput(args[1], in.data, asHex || in.hex); err != nil {
				return err
			}

			a.print(cmd, normalizeResult{
				Input:  in.path,
				Output: args[1],
				Size:   n,
				From:   from,
				To:     order.String(),
			})

			return nil
		},
	}

	cmd.Flags().StringVar(&orderName, "order", "native", "target byte order: native, little, big")
	cmd.Flags().BoolVar(&asHex, "hex", false, "write hex text")

	return cmd
}

func parseByteOrder(name string) (format.ByteOrder, error) {
	switch strings.ToLower(name) {
	case "native", "":
		return endian.NativeOrder(), nil
	case "little", "ndr":
		return format.LittleEndian, nil
	case "big", "xdr":
		return format.BigEndian, nil
	default:
		return 0, fmt.Errorf("invalid byte order %q (want native, little or big)", name)
	}
}
