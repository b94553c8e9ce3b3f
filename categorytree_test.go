package kopilka

import "testing"

func TestInferTree(t *testing.T) {
	txs := []Transaction{
		catTx("2024-01-01", Expense, 100, "Food / Groceries"),
		catTx("2024-01-02", Expense, 100, "Food / Eating Out"),
		catTx("2024-01-03", Income, 100, "Gifts"),
		catTx("2024-01-04", Expense, 100, "Gifts"),
		catTx("2024-01-05", Transfer, 100, "Food"),
		catTx("2024-01-06", Expense, 100, ""),
	}

	tree := InferTree(txs)

	if len(tree.Roots) != 2 {
		t.Fatalf("got %d roots (%+v), want 2", len(tree.Roots), tree.Roots)
	}

	var food, gifts *CategoryNode
	for _, n := range tree.Roots {
		switch n.Name {
		case "Food":
			food = n
		case "Gifts":
			gifts = n
		}
	}
	if food == nil || gifts == nil {
		t.Fatalf("missing roots in %+v", tree.Roots)
	}

	if food.Scope != ScopeExpense {
		t.Errorf("Food scope = %v, want expense", food.Scope)
	}
	if len(food.Children) != 2 {
		t.Errorf("Food children = %+v, want Groceries and Eating Out", food.Children)
	}
	// used by both directions
	if gifts.Scope != ScopeBoth {
		t.Errorf("Gifts scope = %v, want both", gifts.Scope)
	}
	for _, n := range tree.Roots {
		if n.ID == "" {
			t.Errorf("inferred node %q has no id", n.Name)
		}
	}
}

func TestMergeTreesStoredWins(t *testing.T) {
	stored := &CategoryTree{Roots: []*CategoryNode{
		{ID: "stored-food", Name: "Food", Icon: "🍞", Scope: ScopeExpense},
	}}
	inferred := &CategoryTree{Roots: []*CategoryNode{
		{ID: "inferred-food", Name: "  food ", Scope: ScopeBoth, Children: []*CategoryNode{
			{ID: "inferred-groc", Name: "Groceries", Scope: ScopeExpense},
		}},
		{ID: "inferred-transport", Name: "Transport", Scope: ScopeExpense},
	}}

	merged := MergeTrees(stored, inferred)

	if len(merged.Roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(merged.Roots))
	}

	var food *CategoryNode
	for _, n := range merged.Roots {
		if n.Name == "Food" {
			food = n
		}
	}
	if food == nil {
		t.Fatal("Food missing from merge")
	}
	if food.ID != "stored-food" || food.Icon != "🍞" || food.Scope != ScopeExpense {
		t.Errorf("stored attributes overwritten: %+v", food)
	}
	if len(food.Children) != 1 || food.Children[0].Name != "Groceries" {
		t.Errorf("inferred children not merged under stored node: %+v", food.Children)
	}
}

func TestMergeTreesIdempotent(t *testing.T) {
	inferred := InferTree([]Transaction{
		catTx("2024-01-01", Expense, 100, "Food / Groceries"),
		catTx("2024-01-02", Income, 100, "Salary"),
	})
	stored := &CategoryTree{Roots: []*CategoryNode{
		{ID: "s1", Name: "Food", Scope: ScopeExpense},
	}}

	once := MergeTrees(stored, inferred)
	twice := MergeTrees(once, inferred)

	var flatten func(nodes []*CategoryNode) []string
	flatten = func(nodes []*CategoryNode) []string {
		var out []string
		for _, n := range nodes {
			out = append(out, n.ID+"/"+n.Name)
			out = append(out, flatten(n.Children)...)
		}
		return out
	}

	a, b := flatten(once.Roots), flatten(twice.Roots)
	if len(a) != len(b) {
		t.Fatalf("merge is not idempotent: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("merge is not idempotent at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestMergeTreesSorted(t *testing.T) {
	stored := &CategoryTree{Roots: []*CategoryNode{
		{ID: "z", Name: "Zoo", Scope: ScopeBoth},
		{ID: "a", Name: "apple", Scope: ScopeBoth},
		{ID: "b", Name: "Banana", Scope: ScopeBoth},
	}}

	merged := MergeTrees(stored, &CategoryTree{})

	want := []string{"apple", "Banana", "Zoo"}
	for i, n := range merged.Roots {
		if n.Name != want[i] {
			t.Errorf("root[%d] = %q, want %q (case-insensitive order)", i, n.Name, want[i])
		}
	}
}

type fakeRepo struct {
	tree  *CategoryTree
	saved *CategoryTree
}

func (r *fakeRepo) LoadTree() (*CategoryTree, error) { return r.tree, nil }
func (r *fakeRepo) SaveTree(t *CategoryTree) error   { r.saved = t; return nil }

func TestSyncTree(t *testing.T) {
	repo := &fakeRepo{}
	txs := []Transaction{catTx("2024-01-01", Expense, 100, "Food")}

	merged, err := SyncTree(repo, txs)
	if err != nil {
		t.Fatalf("SyncTree() error = %v", err)
	}
	if repo.saved != merged {
		t.Error("SyncTree must save the merged tree")
	}
	if len(merged.Roots) != 1 || merged.Roots[0].Name != "Food" {
		t.Errorf("merged = %+v", merged.Roots)
	}
}
