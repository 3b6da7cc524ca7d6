package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/treetools/tree"
	"github.com/npillmayer/treetools/tree/treedbg"
)

// visit is a node reached by a traversal.
type visit struct {
	Label  string `json:"label" yaml:"label"`
	Level  int    `json:"level" yaml:"level"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// printer writes command results in the configured format.
type printer struct {
	w      io.Writer
	format string
	label  string
	shape  tree.RecordShape
}

func (tt *treetool) printer(w io.Writer) printer {
	return printer{
		w:      w,
		format: tt.config.Format,
		label:  tt.config.Label,
		shape:  tt.shape(),
	}
}

// forest prints trees of records.
func (p printer) forest(roots []tree.Record) error {
	switch p.format {
	case formatTree:
		return treedbg.Fprint(p.w, roots, p.shape, treedbg.RecordLabel(p.label))
	case formatTable:
		flat, err := tree.Flatten(roots, p.shape)
		if err != nil {
			return err
		}
		return p.table(flat)
	}
	return p.document(roots)
}

// list prints records as a list, without their subtrees in tree and
// table format.
func (p printer) list(nodes []tree.Record) error {
	switch p.format {
	case formatTree:
		leaves := tree.ChildrenFunc[tree.Record](func(tree.Record) []tree.Record { return nil })
		return treedbg.Fprint[tree.Record](p.w, nodes, leaves, treedbg.RecordLabel(p.label))
	case formatTable:
		return p.table(nodes)
	}
	return p.document(nodes)
}

// visits prints the nodes of a traversal in visiting order.
func (p printer) visits(vs []visit) error {
	switch p.format {
	case formatTree:
		for _, v := range vs {
			if _, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", v.Level), v.Label); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
		}
		return nil
	case formatTable:
		table := tablewriter.NewWriter(p.w)
		table.SetHeader([]string{"label", "level", "parent"})
		for _, v := range vs {
			table.Append([]string{v.Label, strconv.Itoa(v.Level), v.Parent})
		}
		table.Render()
		return nil
	}
	return p.document(vs)
}

func (p printer) document(v interface{}) error {
	if p.format == formatYAML {
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		return errors.Wrap(enc.Close(), "failed to encode YAML")
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode JSON")
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return errors.Wrap(err, "failed to write output")
}

// table prints one row per record. Columns are the fields of all records
// but the children field, in alphabetical order.
func (p printer) table(nodes []tree.Record) error {
	children := p.shape.Names().Children
	fields := map[string]struct{}{}
	for _, n := range nodes {
		for k := range n {
			if k != children {
				fields[k] = struct{}{}
			}
		}
	}
	header := make([]string, 0, len(fields))
	for k := range fields {
		header = append(header, k)
	}
	sort.Strings(header)
	table := tablewriter.NewWriter(p.w)
	table.SetHeader(header)
	for _, n := range nodes {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = n.Text(k)
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// labelOf returns the label text of a node.
func (p printer) labelOf(node tree.Record) string {
	if node == nil {
		return ""
	}
	if _, ok := node.Get(p.label); !ok {
		return "<?>"
	}
	return node.Text(p.label)
}
