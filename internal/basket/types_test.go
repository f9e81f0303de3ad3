package basket

import "testing"

func TestItemSetContainsAll(t *testing.T) {
	s := NewItemSet("A", "B", "C")

	if !s.ContainsAll(NewItemSet("A", "B")) {
		t.Error("expected {A,B,C} to contain all of {A,B}")
	}
	if s.ContainsAll(NewItemSet("A", "D")) {
		t.Error("expected {A,B,C} not to contain all of {A,D}")
	}
	if !s.ContainsAll(NewItemSet()) {
		t.Error("expected the empty set to be a subset of anything")
	}
}

func TestItemSetItems_Sorted(t *testing.T) {
	s := NewItemSet("pear", "apple", "milk")

	items := s.Items()
	want := []string{"apple", "milk", "pear"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("expected items[%d]=%s, got %s", i, want[i], items[i])
		}
	}
}

func TestCollectionAdd(t *testing.T) {
	coll := make(Collection)
	coll.Add("1", "A")
	coll.Add("1", "B")
	coll.Add("1", "A") // duplicate membership is a no-op
	coll.Add("2", "A")

	if coll.Len() != 2 {
		t.Errorf("expected 2 baskets, got %d", coll.Len())
	}
	if coll["1"].Len() != 2 {
		t.Errorf("expected basket 1 to hold 2 items, got %d", coll["1"].Len())
	}
	if !coll["2"].Contains("A") {
		t.Error("expected basket 2 to contain A")
	}
}
