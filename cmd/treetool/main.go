/*
Treetool applies the tree toolkit to JSON and YAML documents.

	treetool --children sub find forest.json --match 'name~draft' --all
	treetool build list.yaml --tree-children kids --format tree

See 'treetool help' for the list of commands.
*/
package main

import "github.com/npillmayer/treetools/cmd/treetool/cmd"

func main() {
	cmd.Execute()
}
