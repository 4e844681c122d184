package orderbook

import "testing"

func TestLevelTreeInsertFindDelete(t *testing.T) {
	tree := newLevelTree()
	lvl := tree.Upsert(100)
	if lvl == nil {
		t.Fatal("Upsert returned nil")
	}
	if tree.Find(100) != lvl {
		t.Error("Find did not return the same level")
	}

	tree.Upsert(200)
	if tree.Min().Price != 100 {
		t.Error("expected min=100")
	}
	if tree.Max().Price != 200 {
		t.Error("expected max=200")
	}

	if !tree.Delete(100) {
		t.Error("Delete failed")
	}
	if tree.Find(100) != nil {
		t.Error("expected level 100 to be gone")
	}
}

func TestLevelTreeDeleteNonExistent(t *testing.T) {
	tree := newLevelTree()
	if tree.Delete(123) {
		t.Error("expected false when deleting a non-existent level")
	}
}

func TestLevelTreeEmptyMinMax(t *testing.T) {
	tree := newLevelTree()
	if tree.Min() != nil || tree.Max() != nil {
		t.Error("expected nil min/max on an empty tree")
	}
}

func TestLevelTreeUpsertDuplicate(t *testing.T) {
	tree := newLevelTree()
	a := tree.Upsert(150)
	b := tree.Upsert(150)
	if a != b {
		t.Error("Upsert should return the existing level for a duplicate price")
	}
	if tree.Size() != 1 {
		t.Errorf("size = %d, want 1", tree.Size())
	}
}

func TestLevelTreeOrderedIteration(t *testing.T) {
	tree := newLevelTree()
	prices := []Price{57, 3, 99, 41, 12, 86, 5, 70, 23, 64, 31, 8, 92, 17, 48}
	for _, p := range prices {
		tree.Upsert(p)
	}

	var asc []Price
	tree.Ascend(func(l *PriceLevel) bool {
		asc = append(asc, l.Price)
		return true
	})
	if len(asc) != len(prices) {
		t.Fatalf("ascending walk visited %d levels, want %d", len(asc), len(prices))
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1] >= asc[i] {
			t.Fatalf("ascending walk out of order: %v", asc)
		}
	}

	var desc []Price
	tree.Descend(func(l *PriceLevel) bool {
		desc = append(desc, l.Price)
		return true
	})
	for i := 1; i < len(desc); i++ {
		if desc[i-1] <= desc[i] {
			t.Fatalf("descending walk out of order: %v", desc)
		}
	}
}

func TestLevelTreeDeleteAlternateLevels(t *testing.T) {
	tree := newLevelTree()
	for p := Price(1); p <= 64; p++ {
		tree.Upsert(p)
	}
	// Delete every other level, then verify shape and bounds.
	for p := Price(2); p <= 64; p += 2 {
		if !tree.Delete(p) {
			t.Fatalf("delete %d failed", p)
		}
	}
	if tree.Size() != 32 {
		t.Fatalf("size = %d, want 32", tree.Size())
	}
	if tree.Min().Price != 1 || tree.Max().Price != 63 {
		t.Errorf("min/max = %d/%d, want 1/63", tree.Min().Price, tree.Max().Price)
	}
	tree.Ascend(func(l *PriceLevel) bool {
		if l.Price%2 == 0 {
			t.Errorf("deleted level %d still present", l.Price)
		}
		return true
	})
}

func TestLevelTreeEarlyStop(t *testing.T) {
	tree := newLevelTree()
	for _, p := range []Price{10, 20, 30} {
		tree.Upsert(p)
	}
	visits := 0
	tree.Ascend(func(*PriceLevel) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Errorf("walk should stop after the first level, visited %d", visits)
	}
}
