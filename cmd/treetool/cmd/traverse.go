package cmd

import (
	"reflect"

	"github.com/spf13/cobra"

	"github.com/npillmayer/treetools/tree"
)

var exampleForBFSCmd = `
  treetool bfs forest.json
  treetool bfs --children sub --label name --format table forest.yaml
`

// NewBFSCmd lists the nodes of a forest level by level.
func NewBFSCmd(tt *treetool) *cobra.Command {
	bfsCmd := &cobra.Command{
		Use:     "bfs FILE",
		Short:   "print node labels in breadth-first order",
		Example: exampleForBFSCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forest, err := readForest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			p := tt.printer(cmd.OutOrStdout())
			shape := tt.shape()
			// records are maps, identified by their map header
			type level struct {
				n      int
				parent string
			}
			levels := map[uintptr]level{}
			visits := []visit{}
			err = tree.BreadthFirst(forest, shape, func(node tree.Record) bool {
				l := levels[reflect.ValueOf(node).Pointer()]
				visits = append(visits, visit{Label: p.labelOf(node), Level: l.n, Parent: l.parent})
				children, _ := shape.Children(node)
				for _, ch := range children {
					if ch != nil {
						levels[reflect.ValueOf(ch).Pointer()] = level{n: l.n + 1, parent: p.labelOf(node)}
					}
				}
				return true
			})
			if err != nil {
				return err
			}
			return p.visits(visits)
		},
	}
	return bfsCmd
}

var exampleForDFSCmd = `
  treetool dfs forest.json
  treetool dfs --post --format tree forest.json
`

// NewDFSCmd lists the nodes of a forest in depth-first order.
func NewDFSCmd(tt *treetool) *cobra.Command {
	var post bool
	dfsCmd := &cobra.Command{
		Use:     "dfs FILE",
		Short:   "print labels with level in depth-first order",
		Example: exampleForDFSCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forest, err := readForest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			order := tree.Pre
			if post {
				order = tree.Post
			}
			p := tt.printer(cmd.OutOrStdout())
			visits := []visit{}
			err = tree.DepthFirst(forest, tt.shape(), func(node, parent tree.Record, level int) bool {
				visits = append(visits, visit{Label: p.labelOf(node), Level: level, Parent: p.labelOf(parent)})
				return true
			}, tree.Visiting(order))
			if err != nil {
				return err
			}
			return p.visits(visits)
		},
	}
	dfsCmd.Flags().BoolVar(&post, "post", false, "visit children before their parent")
	return dfsCmd
}

// NewFlattenCmd lists all records of a forest in pre-order.
func NewFlattenCmd(tt *treetool) *cobra.Command {
	var dropChildren bool
	flattenCmd := &cobra.Command{
		Use:   "flatten FILE",
		Short: "print all records of a forest as a flat list in pre-order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forest, err := readForest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			shape := tt.shape()
			list, err := tree.Flatten(forest, shape)
			if err != nil {
				return err
			}
			if dropChildren {
				for i, n := range list {
					cp := shape.Clone(n)
					delete(cp, shape.Names().Children)
					list[i] = cp
				}
			}
			return tt.printer(cmd.OutOrStdout()).list(list)
		},
	}
	flattenCmd.Flags().BoolVar(&dropChildren, "drop-children", false, "omit the children field of listed records")
	return flattenCmd
}
