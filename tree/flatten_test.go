package tree

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFlattenPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	list, err := Flatten(deepForestForTest(), Fields())
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"a", "b", "d", "e", "c", "f", "g", "h"}
	if !reflect.DeepEqual(labels(list, "name"), expected) {
		t.Errorf("expected flattened list %v, have %v", expected, labels(list, "name"))
	}
}

func TestFlattenKeepsOriginalNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	forest := deepForestForTest()
	list, err := Flatten(forest, Fields())
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	seen := map[uintptr]bool{}
	_ = DepthFirst(forest, Fields(), func(n, _ Record, _ int) bool {
		count++
		seen[reflect.ValueOf(n).Pointer()] = true
		return true
	})
	if len(list) != count {
		t.Fatalf("expected %d nodes in flat list, have %d", count, len(list))
	}
	for _, n := range list {
		p := reflect.ValueOf(n).Pointer()
		if !seen[p] {
			t.Errorf("node %v of flat list is not an original node", n)
		}
		delete(seen, p)
	}
	if len(seen) > 0 {
		t.Errorf("%d nodes missing from flat list", len(seen))
	}
	if _, ok := list[0]["children"]; !ok {
		t.Error("expected flattened nodes to keep their children")
	}
}

func TestFlattenSingleTreeAndObserver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	root := Record{"ID": 1, "children": []Record{{"ID": 2}}}
	var seen []string
	list, err := Flatten([]Record{root}, Fields(), OnEachTraverse(func(n Record) {
		seen = append(seen, n.Text("ID"))
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[1]["ID"] != 2 {
		t.Errorf("expected [1 2], have %v", list)
	}
	if !reflect.DeepEqual(seen, []string{"1", "2"}) {
		t.Errorf("expected observer to see 1, 2; saw %v", seen)
	}
}

func TestFlattenNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	root := NewNode(1).AddChild(NewNode(2).AddChild(NewNode(3))).AddChild(NewNode(4))
	list, err := Flatten([]*Node[int]{root, NewNode(5)}, NodeShape[int]())
	if err != nil {
		t.Fatal(err)
	}
	var payloads []int
	for _, n := range list {
		payloads = append(payloads, n.Payload)
	}
	if !reflect.DeepEqual(payloads, []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected 1…5 in pre-order, have %v", payloads)
	}
}
