package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/wkb/geomset"
	"github.com/arloliu/wkb/raw"
	"github.com/arloliu/wkb/spatial"
	"github.com/spf13/cobra"
)

type queryRow struct {
	Index    int    `json:"index" yaml:"index"`
	Type     string `json:"type" yaml:"type"`
	Size     int    `json:"size" yaml:"size"`
	Envelope string `json:"envelope" yaml:"envelope"`
}

type queryReport struct {
	Set     string     `json:"set" yaml:"set"`
	Indexed int        `json:"indexed" yaml:"indexed"`
	Skipped int        `json:"skipped" yaml:"skipped"`
	Matches []queryRow `json:"matches" yaml:"matches"`
}

func (r queryReport) Title() string {
	return fmt.Sprintf("%s: %d of %d geometries match", r.Set, len(r.Matches), r.Indexed+r.Skipped)
}

func (r queryReport) Rows() any {
	return r.Matches
}

func newQueryCmd(a *app) *cobra.Command {
	var (
		bbox    string
		near    string
		nearest int
	)

	cmd := &cobra.Command{
		Use:   "query <set>",
		Short: "Find geometries of a set by bounding box or distance",
		Long: `Build an R-tree over the envelopes of a geometry set and print the records
whose envelope intersects --bbox, or the --k records whose envelopes are
nearest to --near. Empty geometries have no envelope and never match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args[0])
			if err != nil {
				return err
			}

			dec, err := geomset.NewDecoder(in.data)
			if err != nil {
				return fmt.Errorf("decode set %s: %w", in.path, err)
			}

			idx, err := spatial.Build(dec.All())
			if err != nil {
				return fmt.Errorf("index set %s: %w", in.path, err)
			}

			var ids []int
			if bbox != "" {
				env, err := parseBBox(bbox)
				if err != nil {
					return err
				}
				ids = idx.Search(env)
			} else {
				vals, err := parseFloats(near, 2, "near")
				if err != nil {
					return err
				}
				ids = idx.Nearest(vals[0], vals[1], nearest)
			}

			report := queryReport{
				Set:     in.path,
				Indexed: idx.Len(),
				Skipped: idx.Skipped(),
				Matches: make([]queryRow, 0, len(ids)),
			}
			for _, id := range ids {
				g, err := dec.At(id)
				if err != nil {
					return err
				}
				env, err := raw.EnvelopeOf(g)
				if err != nil {
					return err
				}
				report.Matches = append(report.Matches, queryRow{
					Index:    id,
					Type:     g.Type().String(),
					Size:     g.Len(),
					Envelope: env.String(),
				})
			}

			a.print(cmd, report)

			return nil
		},
	}

	cmd.Flags().StringVar(&bbox, "bbox", "", "query box: minx,miny,maxx,maxy")
	cmd.Flags().StringVar(&near, "near", "", "query point: x,y")
	cmd.Flags().IntVarP(&nearest, "k", "k", 1, "number of neighbours for --near")
	cmd.MarkFlagsMutuallyExclusive("bbox", "near")
	cmd.MarkFlagsOneRequired("bbox", "near")

	return cmd
}

func parseBBox(s string) (raw.Envelope, error) {
	vals, err := parseFloats(s, 4, "bbox")
	if err != nil {
		return raw.Envelope{}, err
	}

	env := raw.Envelope{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}
	if env.IsEmpty() {
		return raw.Envelope{}, fmt.Errorf("invalid bbox %q: min exceeds max", s)
	}

	return env, nil
}

func parseFloats(s string, n int, name string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid %s %q: want %d comma separated numbers", name, s, n)
	}

	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", name, s, err)
		}
		vals[i] = v
	}

	return vals, nil
}
