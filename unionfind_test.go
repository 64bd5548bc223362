package circuit

import "testing"

func TestNewUnionFind(t *testing.T) {
	uf := NewUnionFind(5)

	// Each element should be its own root.
	for i := 0; i < 5; i++ {
		if root := uf.Find(i); root != i {
			t.Errorf("Find(%d) = %d, want %d", i, root, i)
		}
	}

	// Each element has size 1.
	for i := 0; i < 5; i++ {
		if uf.size[i] != 1 {
			t.Errorf("size[%d] = %d, want 1", i, uf.size[i])
		}
	}

	if uf.Components() != 5 {
		t.Errorf("Components() = %d, want 5", uf.Components())
	}
}

func TestUnionFind_UnionTwoElements(t *testing.T) {
	uf := NewUnionFind(5)
	root, merged := uf.Union(1, 3)

	if !merged {
		t.Error("Union(1,3) reported no merge")
	}
	// Both should resolve to the same root.
	if uf.Find(1) != uf.Find(3) {
		t.Error("after Union(1,3), Find(1) != Find(3)")
	}
	// Root should be one of them.
	if root != uf.Find(1) {
		t.Errorf("Union returned %d, but Find(1) = %d", root, uf.Find(1))
	}
	// Size of the root should be 2.
	if uf.Size(1) != 2 {
		t.Errorf("Size(1) = %d, want 2", uf.Size(1))
	}
	if uf.Components() != 4 {
		t.Errorf("Components() = %d, want 4", uf.Components())
	}
}

func TestUnionFind_UnionIsIdempotent(t *testing.T) {
	uf := NewUnionFind(3)
	uf.Union(0, 1)

	root, merged := uf.Union(1, 0)
	if merged {
		t.Error("second Union(1,0) reported a merge")
	}
	if root != uf.Find(0) {
		t.Errorf("Union returned %d, want existing root %d", root, uf.Find(0))
	}
	if uf.Components() != 2 {
		t.Errorf("Components() = %d, want 2", uf.Components())
	}
	if uf.Size(0) != 2 {
		t.Errorf("Size(0) = %d, want 2", uf.Size(0))
	}
}

func TestUnionFind_MultipleUnions(t *testing.T) {
	uf := NewUnionFind(6)

	// Union {0,1,2} and {3,4,5}.
	uf.Union(0, 1)
	uf.Union(1, 2)
	uf.Union(3, 4)
	uf.Union(4, 5)

	// Same component.
	if !uf.Connected(0, 2) {
		t.Error("0 and 2 should be in same set")
	}
	if !uf.Connected(3, 5) {
		t.Error("3 and 5 should be in same set")
	}
	// Different components.
	if uf.Connected(0, 3) {
		t.Error("0 and 3 should be in different sets")
	}
	if uf.Components() != 2 {
		t.Errorf("Components() = %d, want 2", uf.Components())
	}

	// Union the two components.
	uf.Union(2, 4)

	// All should be connected now.
	root := uf.Find(0)
	for i := 1; i < 6; i++ {
		if uf.Find(i) != root {
			t.Errorf("after full union, Find(%d) != Find(0)", i)
		}
	}
	if uf.size[root] != 6 {
		t.Errorf("size of root = %d, want 6", uf.size[root])
	}
	if uf.Components() != 1 {
		t.Errorf("Components() = %d, want 1", uf.Components())
	}
}

func TestUnionFind_PathCompression(t *testing.T) {
	uf := NewUnionFind(5)

	// Build the chain by hand so compression has something to do: 4→3→2→1→0.
	for i := 1; i < 5; i++ {
		uf.parent[i] = i - 1
	}

	root := uf.Find(4)
	if root != 0 {
		t.Fatalf("Find(4) = %d, want 0", root)
	}
	// After compression every node on the path points directly to root.
	for i := 1; i < 5; i++ {
		if uf.parent[i] != root {
			t.Errorf("after Find(4), parent[%d] = %d, want root %d", i, uf.parent[i], root)
		}
	}
}

func TestUnionFind_UnionBySize(t *testing.T) {
	uf := NewUnionFind(4)

	// Union {0,1,2} → size 3.
	uf.Union(0, 1)
	uf.Union(0, 2)

	bigRoot := uf.Find(0)

	// Union with single element 3 → smaller attaches to larger.
	uf.Union(3, 0)
	newRoot := uf.Find(3)

	if newRoot != bigRoot {
		t.Errorf("expected union-by-size: small tree attaches to big root %d, got root %d", bigRoot, newRoot)
	}
}

func TestUnionFind_ComponentsNeverIncrease(t *testing.T) {
	uf := NewUnionFind(8)
	pairs := [][2]int{{0, 1}, {2, 3}, {1, 0}, {4, 5}, {6, 7}, {0, 3}, {5, 6}, {3, 4}, {7, 0}}

	prev := uf.Components()
	for _, p := range pairs {
		_, merged := uf.Union(p[0], p[1])
		got := uf.Components()
		switch {
		case merged && got != prev-1:
			t.Errorf("Union(%d,%d) merged but components went %d → %d", p[0], p[1], prev, got)
		case !merged && got != prev:
			t.Errorf("Union(%d,%d) was a no-op but components went %d → %d", p[0], p[1], prev, got)
		}
		prev = got
	}
	if prev != 1 {
		t.Errorf("final components = %d, want 1", prev)
	}
}
