package tree

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func nameIs(name string) func(Record) bool {
	return func(n Record) bool {
		return n.Text("name") == name
	}
}

func TestFindFirstMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	forest := []Record{r("a", r("b")), r("c")}
	found, err := Find(forest, Fields(), nameIs("b"))
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].Text("name") != "b" {
		t.Errorf("expected to find [b], found %v", found)
	}
}

func TestFindFirstInBreadthFirstOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	// x occurs at depth 2 in the first tree and at depth 1 in the second
	forest := []Record{
		{"name": "a", "id": 1, "children": []Record{r("b", Record{"name": "x", "id": 2})}},
		{"name": "c", "id": 3, "children": []Record{{"name": "x", "id": 4}}},
	}
	found, err := Find(forest, Fields(), nameIs("x"))
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0]["id"] != 4 {
		t.Errorf("expected to find x with id=4, found %v", found)
	}
}

func TestFindAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	isLeaf := func(n Record) bool {
		_, ok := Fields().Children(n)
		return !ok
	}
	found, err := Find(deepForestForTest(), Fields(), isLeaf, FindAll())
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"h", "d", "e", "g"}
	if !reflect.DeepEqual(labels(found, "name"), expected) {
		t.Errorf("expected leafs %v, found %v", expected, labels(found, "name"))
	}
}

func TestFindNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	found, err := Find(deepForestForTest(), Fields(), nameIs("none"), FindAll())
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || len(found) != 0 {
		t.Errorf("expected empty result, have %#v", found)
	}
	if _, ok, _ := FindFirst(deepForestForTest(), Fields(), nameIs("none")); ok {
		t.Error("expected FindFirst to report no match")
	}
}

func TestFindObserver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	var seen []string
	observer := OnEachTraverse(func(n Record) {
		seen = append(seen, n.Text("name"))
	})
	_, err := Find(deepForestForTest(), Fields(), nameIs("c"), observer)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seen, []string{"a", "h", "b", "c"}) {
		t.Errorf("expected observer to see a, h, b, c; saw %v", seen)
	}
}

func TestFindObserverOfWrongType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	_, err := Find(deepForestForTest(), Fields(), nameIs("c"), OnEachTraverse(func(n *Node[int]) {}))
	if !errors.Is(err, ErrObserverType) {
		t.Errorf("expected ErrObserverType, have %v", err)
	}
	_, err = Find[Record](deepForestForTest(), Fields(), nil)
	if !errors.Is(err, ErrNilPredicate) {
		t.Errorf("expected ErrNilPredicate, have %v", err)
	}
}

func TestFindWithChildrenFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	graph := map[int][]int{1: {2, 3}, 2: {4}, 3: {5, 6}}
	children := ChildrenFunc[int](func(n int) []int { return graph[n] })
	found, err := Find([]int{1}, children, func(n int) bool { return n%2 == 0 }, FindAll())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(found, []int{2, 4, 6}) {
		t.Errorf("expected to find 2, 4, 6; found %v", found)
	}
}

// --- Paths -----------------------------------------------------------------

func TestFindPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	forest := []Record{r("a", r("b")), r("c")}
	path, err := FindPath(forest, Fields(), nameIs("b"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(labels(path, "name"), []string{"a", "b"}) {
		t.Errorf("expected path [a b], have %v", labels(path, "name"))
	}
	if !reflect.DeepEqual(path[1], Record{"name": "b"}) {
		t.Errorf("expected last path element to be b, is %v", path[1])
	}
}

func TestFindPathAfterBacktracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	for name, expected := range map[string][]string{
		"a": {"a"},
		"e": {"a", "b", "e"},
		"g": {"a", "c", "f", "g"},
		"h": {"h"},
	} {
		path, err := FindPath(deepForestForTest(), Fields(), nameIs(name))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(labels(path, "name"), expected) {
			t.Errorf("expected path to %s to be %v, is %v", name, expected, labels(path, "name"))
		}
	}
}

func TestFindPathFirstInDepthFirstOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	forest := []Record{
		{"name": "a", "children": []Record{r("b", Record{"name": "x", "id": 1})}},
		{"name": "c", "children": []Record{{"name": "x", "id": 2}}},
	}
	path, err := FindPath(forest, Fields(), nameIs("x"))
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 3 || path[2]["id"] != 1 {
		t.Errorf("expected path a/b/x(1), have %v", path)
	}
}

func TestFindPathNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	path, err := FindPath(deepForestForTest(), Fields(), nameIs("none"))
	if err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Errorf("expected nil path, have %v", path)
	}
	path, _ = FindPath([]Record{}, Fields(), nameIs("none"))
	if path != nil {
		t.Errorf("expected nil path for empty forest, have %v", path)
	}
}

func TestFindPathTerminatesOnCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	a := NewNode("a")
	b := NewNode("b")
	a.AddChild(b)
	b.children = append(b.children, a) // a → b → a
	path, err := FindPath([]*Node[string]{a}, NodeShape[string](), func(n *Node[string]) bool {
		return n.Payload == "z"
	})
	if err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Errorf("expected no path in cyclic graph, have %v", path)
	}
}

func TestFindPathOnNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.tree")
	defer teardown()
	//
	c := NewNode("c")
	root := NewNode("a").AddChild(NewNode("b")).AddChild(NewNode("x").AddChild(c))
	path, err := FindPath([]*Node[string]{root}, NodeShape[string](), func(n *Node[string]) bool {
		return n.Payload == "c"
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 3 || path[0] != root || path[2] != c {
		t.Errorf("expected path a/x/c, have %v", path)
	}
}
