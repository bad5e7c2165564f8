package cli

import (
	"fmt"

	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geomset"
	"github.com/arloliu/wkb/raw"
	"github.com/spf13/cobra"
)

type packResult struct {
	Output       string `json:"output" yaml:"output"`
	Geometries   int    `json:"geometries" yaml:"geometries"`
	Compression  string `json:"compression" yaml:"compression"`
	Deduplicated bool   `json:"deduplicated" yaml:"deduplicated"`
	PayloadSize  int    `json:"payload_size" yaml:"payload_size"`
	SetSize      int    `json:"set_size" yaml:"set_size"`
}

func newPackCmd(a *app) *cobra.Command {
	var (
		compression string
		dedup       bool
	)

	cmd := &cobra.Command{
		Use:   "pack <out> <file>...",
		Short: "Pack geometries into a geometry set",
		Long: `Pack one geometry per input file into a geometry set. Inputs in the other
byte order are normalized first. The payload compression defaults to the
compression setting of the config file.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Compression
			if cmd.Flags().Changed("compression") {
				name = compression
			}
			ct, ok := format.ParseCompression(name)
			if !ok {
				return fmt.Errorf("invalid compression %q (want none, zstd, s2 or lz4)", name)
			}

			enc, err := geomset.NewEncoder(
				geomset.WithCompression(ct),
				geomset.WithDeduplication(dedup),
			)
			if err != nil {
				return err
			}

			for _, path := range args[1:] {
				in, err := readInput(path)
				if err != nil {
					return err
				}
				if _, err := raw.NormalizeToNative(in.data); err != nil {
					return fmt.Errorf("normalize %s: %w", path, err)
				}
				if err := enc.Add(in.data); err != nil {
					return fmt.Errorf("add %s: %w", path, err)
				}
			}

			out, err := enc.Finish()
			if err != nil {
				return fmt.Errorf("finish set: %w", err)
			}

			if err := writeOutput(args[0], out, false); err != nil {
				return err
			}

			dec, err := geomset.NewDecoder(out)
			if err != nil {
				return fmt.Errorf("verify set: %w", err)
			}
			header := dec.Header()

			a.print(cmd, packResult{
				Output:       args[0],
				Geometries:   dec.Len(),
				Compression:  header.Compression.String(),
				Deduplicated: header.IsDeduplicated(),
				PayloadSize:  int(header.PayloadSize),
				SetSize:      len(out),
			})

			return nil
		},
	}

	cmd.Flags().StringVarP(&compression, "compression", "c", "", "payload compression: none, zstd, s2, lz4")
	cmd.Flags().BoolVar(&dedup, "dedup", false, "store identical geometries once")

	return cmd
}
