package kopilka

import (
	"encoding/json"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryScope tells which transaction directions a category applies to.
type CategoryScope int

const (
	ScopeBoth CategoryScope = iota
	ScopeIncome
	ScopeExpense
)

func (s CategoryScope) String() string {
	switch s {
	case ScopeIncome:
		return "income"
	case ScopeExpense:
		return "expense"
	default:
		return "both"
	}
}

// ParseCategoryScope parses a scope name; anything unrecognized is "both".
func ParseCategoryScope(s string) CategoryScope {
	switch s {
	case "income":
		return ScopeIncome
	case "expense":
		return ScopeExpense
	default:
		return ScopeBoth
	}
}

func (s CategoryScope) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *CategoryScope) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ParseCategoryScope(str)
	return nil
}

// CategoryNode is one node of the user's category tree.
type CategoryNode struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Icon     string          `json:"icon,omitempty"`
	Scope    CategoryScope   `json:"scope"`
	Children []*CategoryNode `json:"children,omitempty"`
}

// CategoryTree is the user-maintained category hierarchy, up to three
// levels deep.
type CategoryTree struct {
	Roots []*CategoryNode `json:"roots"`
}

// collator sorts category names the way a user expects to read them.
var collator = collate.New(language.Russian, collate.IgnoreCase)

// InferTree builds a draft tree from the category paths of historical
// transactions. Each node's scope reflects the directions that actually
// used the path: income only, expense only, or both. Transfers carry no
// category and contribute nothing.
func InferTree(transactions []Transaction) *CategoryTree {
	tree := &CategoryTree{}
	for _, tx := range transactions {
		if tx.Deleted || tx.Direction == Transfer || tx.Category.IsZero() {
			continue
		}
		scope := ScopeExpense
		if tx.Direction == Income {
			scope = ScopeIncome
		}
		nodes := &tree.Roots
		for _, name := range tx.Category.Segments() {
			node := findNode(*nodes, name)
			if node == nil {
				node = &CategoryNode{ID: newID(), Name: name, Scope: scope}
				*nodes = append(*nodes, node)
			} else if node.Scope != scope {
				node.Scope = ScopeBoth
			}
			nodes = &node.Children
		}
	}
	sortTree(tree.Roots)
	return tree
}

// MergeTrees merges a tree inferred from history into the stored tree. For
// every stored node a same-name inferred node (case and whitespace
// normalized) merges recursively; the stored node's own id, icon and scope
// are never overwritten. Inferred nodes with no stored counterpart are
// appended as new. The merge is pure and idempotent: feeding the result
// back with the same inferred tree changes nothing.
func MergeTrees(stored, inferred *CategoryTree) *CategoryTree {
	return &CategoryTree{Roots: mergeNodes(stored.Roots, inferred.Roots)}
}

func mergeNodes(stored, inferred []*CategoryNode) []*CategoryNode {
	merged := make([]*CategoryNode, 0, len(stored))
	taken := make(map[string]struct{})
	for _, s := range stored {
		node := &CategoryNode{ID: s.ID, Name: s.Name, Icon: s.Icon, Scope: s.Scope}
		if counterpart := findNode(inferred, s.Name); counterpart != nil {
			taken[nameKey(counterpart.Name)] = struct{}{}
			node.Children = mergeNodes(s.Children, counterpart.Children)
		} else {
			node.Children = mergeNodes(s.Children, nil)
		}
		merged = append(merged, node)
	}
	for _, i := range inferred {
		if _, ok := taken[nameKey(i.Name)]; ok {
			continue
		}
		merged = append(merged, copyNode(i))
	}
	sortTree(merged)
	return merged
}

func findNode(nodes []*CategoryNode, name string) *CategoryNode {
	key := nameKey(name)
	for _, n := range nodes {
		if nameKey(n.Name) == key {
			return n
		}
	}
	return nil
}

func copyNode(n *CategoryNode) *CategoryNode {
	c := &CategoryNode{ID: n.ID, Name: n.Name, Icon: n.Icon, Scope: n.Scope}
	for _, child := range n.Children {
		c.Children = append(c.Children, copyNode(child))
	}
	sortTree(c.Children)
	return c
}

func sortTree(nodes []*CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return collator.CompareString(nodes[i].Name, nodes[j].Name) < 0
	})
}

// TreeRepository abstracts where the category tree is stored, so the merge
// stays storage-agnostic.
type TreeRepository interface {
	LoadTree() (*CategoryTree, error)
	SaveTree(*CategoryTree) error
}

// SyncTree loads the stored tree, merges the tree inferred from the
// transactions into it, saves the result and returns it.
func SyncTree(repo TreeRepository, transactions []Transaction) (*CategoryTree, error) {
	stored, err := repo.LoadTree()
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = &CategoryTree{}
	}
	merged := MergeTrees(stored, InferTree(transactions))
	if err := repo.SaveTree(merged); err != nil {
		return nil, err
	}
	return merged, nil
}
