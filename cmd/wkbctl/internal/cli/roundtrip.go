package cli

import (
	"bytes"
	"fmt"

	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/orbgeom"
	"github.com/arloliu/wkb/raw"
	"github.com/spf13/cobra"
)

type roundtripRow struct {
	Reader string `json:"reader" yaml:"reader"`
	Type   string `json:"type" yaml:"type"`
	Size   int    `json:"size" yaml:"size"`
	Match  bool   `json:"match" yaml:"match"`
}

type roundtripReport struct {
	File    string         `json:"file" yaml:"file"`
	Size    int            `json:"size" yaml:"size"`
	Results []roundtripRow `json:"results" yaml:"results"`
}

func (r roundtripReport) Title() string {
	return fmt.Sprintf("%s: %d bytes", r.File, r.Size)
}

func (r roundtripReport) Rows() any {
	return r.Results
}

func newRoundtripCmd(a *app) *cobra.Command {
	var (
		packing string
		useOrb  bool
	)

	cmd := &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Read a geometry and write it back",
		Long: `Materialize a geometry with each selected coordinate layout, write it back
in native byte order and compare the bytes with the normalized input. The
command fails when any rewrite differs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("packing") {
				cfg.Packing = packing
			}
			modes, err := cfg.PackingModes()
			if err != nil {
				return err
			}

			in, err := readInput(args[0])
			if err != nil {
				return err
			}
			if _, err := raw.NormalizeToNative(in.data); err != nil {
				return fmt.Errorf("normalize %s: %w", in.path, err)
			}

			readers := make([]namedReader, 0, len(modes)+1)
			for _, mode := range modes {
				r, err := codec.NewReader(codec.WithPackingMode(mode))
				if err != nil {
					return err
				}
				readers = append(readers, namedReader{name: mode.String(), reader: r})
			}
			if useOrb {
				r, err := codec.NewReader(
					codec.WithFactory(orbgeom.Factory{}),
					codec.WithSequenceFactory(orbgeom.SequenceFactory{}),
				)
				if err != nil {
					return err
				}
				readers = append(readers, namedReader{name: "orb", reader: r})
			}

			w, err := codec.NewWriter()
			if err != nil {
				return err
			}

			report := roundtripReport{File: in.path, Size: len(in.data)}
			mismatch := false
			for _, nr := range readers {
				g, err := nr.reader.Read(in.data)
				if err != nil {
					return fmt.Errorf("read %s (%s): %w", in.path, nr.name, err)
				}
				out, err := w.Marshal(g)
				if err != nil {
					return fmt.Errorf("write %s (%s): %w", in.path, nr.name, err)
				}

				match := bytes.Equal(out, in.data)
				mismatch = mismatch || !match
				report.Results = append(report.Results, roundtripRow{
					Reader: nr.name,
					Type:   g.GeometryType().String(),
					Size:   len(out),
					Match:  match,
				})
			}

			a.print(cmd, report)

			if mismatch {
				return fmt.Errorf("round trip of %s changed the encoding", in.path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&packing, "packing", "", "coordinate layout: aos, soa, all (default from config)")
	cmd.Flags().BoolVar(&useOrb, "orb", false, "also read through the orb object model")

	return cmd
}

type namedReader struct {
	name   string
	reader *codec.Reader
}
