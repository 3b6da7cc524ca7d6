package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/npillmayer/treetools"
	"github.com/npillmayer/treetools/query"
	"github.com/npillmayer/treetools/tree"
)

var longMatchDescription = `Nodes are selected by match expressions, which must all hold:

  field=value    field is set and equals value
  field!=value   field is not set or differs from value
  field~text     field is set and contains text
  field          field is set
  !field         field is not set
`

// matchFlag registers the --match flag with a command.
func matchFlag(cmd *cobra.Command, exprs *[]string) {
	cmd.Flags().StringArrayVarP(exprs, "match", "m", nil, "match expression, may be repeated")
	_ = cmd.MarkFlagRequired("match")
}

func compile(exprs []string) (treetools.Predicate[tree.Record], error) {
	p, err := query.Compile(exprs...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --match")
	}
	return p, nil
}

// NewFindCmd searches a forest in breadth-first order.
func NewFindCmd(tt *treetool) *cobra.Command {
	var (
		exprs []string
		all   bool
	)
	findCmd := &cobra.Command{
		Use:     "find FILE",
		Short:   "print the first node, or all nodes, matching in breadth-first order",
		Long:    longMatchDescription,
		Example: "  treetool find forest.json --match 'name~draft' --match '!children' --all",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			predicate, err := compile(exprs)
			if err != nil {
				return err
			}
			forest, err := readForest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			var opts []tree.Option
			if all {
				opts = append(opts, tree.FindAll())
			}
			found, err := tree.Find(forest, tt.shape(), predicate, opts...)
			if err != nil {
				return err
			}
			logrus.Debugf("found %d nodes", len(found))
			return tt.printer(cmd.OutOrStdout()).list(found)
		},
	}
	matchFlag(findCmd, &exprs)
	findCmd.Flags().BoolVarP(&all, "all", "a", false, "find all matching nodes")
	return findCmd
}

// NewPathCmd prints the path from a root to the first matching node.
func NewPathCmd(tt *treetool) *cobra.Command {
	var exprs []string
	pathCmd := &cobra.Command{
		Use:     "path FILE",
		Short:   "print the path from a root to the first node matching in depth-first order",
		Long:    longMatchDescription,
		Example: "  treetool path forest.json --match id=1-2-1 --format table",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			predicate, err := compile(exprs)
			if err != nil {
				return err
			}
			forest, err := readForest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			path, err := tree.FindPath(forest, tt.shape(), predicate)
			if err != nil {
				return err
			}
			if path == nil {
				logrus.Infof("no node matches %v", exprs)
				path = []tree.Record{}
			}
			return tt.printer(cmd.OutOrStdout()).list(path)
		},
	}
	matchFlag(pathCmd, &exprs)
	return pathCmd
}

// NewFilterCmd prunes a forest to the matching nodes and their ancestors.
func NewFilterCmd(tt *treetool) *cobra.Command {
	var (
		exprs []string
		keep  bool
	)
	filterCmd := &cobra.Command{
		Use:     "filter FILE",
		Short:   "print the forest reduced to matching nodes and their ancestors",
		Long:    longMatchDescription,
		Example: "  treetool filter forest.json --match 'id~1' --keep-subtrees --format tree",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			predicate, err := compile(exprs)
			if err != nil {
				return err
			}
			forest, err := readForest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			var opts []tree.Option
			if keep {
				opts = append(opts, tree.KeepMatchedSubtrees())
			}
			filtered, err := tree.Filter(forest, tt.shape(), predicate, opts...)
			if err != nil {
				return err
			}
			return tt.printer(cmd.OutOrStdout()).forest(filtered)
		},
	}
	matchFlag(filterCmd, &exprs)
	filterCmd.Flags().BoolVar(&keep, "keep-subtrees", false, "keep the complete subtrees of matching nodes")
	return filterCmd
}
