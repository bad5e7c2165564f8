package cli

import (
	"fmt"
	"strconv"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/raw"
	"github.com/arloliu/wkb/section"
	"github.com/spf13/cobra"
)

// nodeInfo describes one geometry node. Count is the number of coordinates,
// rings or children depending on the kind.
type nodeInfo struct {
	Path     string `json:"path" yaml:"path"`
	Type     string `json:"type" yaml:"type"`
	Offset   int    `json:"offset" yaml:"offset"`
	Size     int    `json:"size" yaml:"size"`
	Count    int    `json:"count" yaml:"count"`
	Envelope string `json:"envelope" yaml:"envelope"`
}

type inspectReport struct {
	File      string     `json:"file" yaml:"file"`
	ByteOrder string     `json:"byte_order" yaml:"byte_order"`
	Size      int        `json:"size" yaml:"size"`
	Nodes     []nodeInfo `json:"nodes" yaml:"nodes"`
}

func (r inspectReport) Title() string {
	return fmt.Sprintf("%s: %d bytes, %s", r.File, r.Size, r.ByteOrder)
}

func (r inspectReport) Rows() any {
	return r.Nodes
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the structure of a geometry",
		Long: `Print every node of a geometry with its byte offset, encoded size, element
count and envelope. Paths name a node by its position below the root, so
0.2.1 is the second child of the third child of the root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args[0])
			if err != nil {
				return err
			}

			report, err := inspect(in)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", in.path, err)
			}

			a.print(cmd, report)

			return nil
		},
	}
}

func inspect(in *input) (inspectReport, error) {
	data := in.data

	n, err := raw.Length(data)
	if err != nil {
		return inspectReport{}, err
	}

	order := format.ByteOrder(data[0])
	if order != endian.NativeOrder() {
		data = append([]byte(nil), data...)
		if _, err := raw.NormalizeToNative(data); err != nil {
			return inspectReport{}, err
		}
	}

	g, err := raw.Parse(data)
	if err != nil {
		return inspectReport{}, err
	}

	r := inspectReport{
		File:      in.path,
		ByteOrder: order.String(),
		Size:      n,
	}
	if err := r.add(g, "0", 0); err != nil {
		return inspectReport{}, err
	}

	return r, nil
}

func (r *inspectReport) add(g raw.Geometry, path string, offset int) error {
	env, err := raw.EnvelopeOf(g)
	if err != nil {
		return err
	}

	node := nodeInfo{
		Path:     path,
		Type:     g.Type().String(),
		Offset:   offset,
		Size:     g.Len(),
		Envelope: env.String(),
	}

	switch g.Type() {
	case format.Point:
		node.Count = 1
	case format.LineString:
		l, err := g.AsLineString()
		if err != nil {
			return err
		}
		node.Count = l.PointCount()
	case format.Polygon:
		p, err := g.AsPolygon()
		if err != nil {
			return err
		}
		node.Count = p.RingCount()
	default:
		c, err := g.AsCollection()
		if err != nil {
			return err
		}
		node.Count = c.NumGeometries()
		r.Nodes = append(r.Nodes, node)

		off := offset + section.CountedHeaderSize
		i := 0
		for child := range c.All() {
			if err := r.add(child, path+"."+strconv.Itoa(i), off); err != nil {
				return err
			}
			off += child.Len()
			i++
		}

		return nil
	}

	r.Nodes = append(r.Nodes, node)

	return nil
}
