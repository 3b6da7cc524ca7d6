package cmd

import (
	"github.com/spf13/cobra"

	"github.com/npillmayer/treetools/tree"
)

var longBuildCmdDescription = `build links a flat list of records into a forest by their id and
parent id fields. Records without a parent id, or whose parent is not in
the list, become roots. The global --id, --parent-id and --children flags
name the fields of the list; the --tree-* flags rename them in the result.
Ids and parent ids are kept under their list names as well.
`

var exampleForBuildCmd = `
  treetool build list.json
  treetool build --id uid --parent-id pid list.yaml --tree-id key --tree-children kids --format tree
`

// NewBuildCmd builds trees from a list of records.
func NewBuildCmd(tt *treetool) *cobra.Command {
	var (
		treeFields tree.FieldNames
		strict     bool
	)
	buildCmd := &cobra.Command{
		Use:     "build FILE",
		Short:   "build a forest from a flat list of records",
		Long:    longBuildCmdDescription,
		Example: exampleForBuildCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readForest(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			listFields := tt.config.Fields
			resultFields := tree.ResolveFieldNames(listFields, treeFields)
			opts := []tree.Option{tree.ListFields(listFields), tree.TreeFields(resultFields)}
			if strict {
				opts = append(opts, tree.RejectDuplicateIDs())
			}
			forest, err := tree.BuildRecords(list, opts...)
			if err != nil {
				return err
			}
			p := tt.printer(cmd.OutOrStdout())
			p.shape = tree.Fields(resultFields)
			if p.label == listFields.ID {
				p.label = resultFields.ID
			}
			return p.forest(forest)
		},
	}
	flags := buildCmd.Flags()
	flags.StringVar(&treeFields.ID, "tree-id", "", "name of the id field in the result")
	flags.StringVar(&treeFields.ParentID, "tree-parent-id", "", "name of the parent id field in the result")
	flags.StringVar(&treeFields.Children, "tree-children", "", "name of the children field in the result")
	flags.BoolVar(&strict, "strict", false, "reject lists with duplicate ids")
	return buildCmd
}
