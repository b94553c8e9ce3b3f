package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mkraev/kopilka"
	md "github.com/nao1215/markdown"
)

func TreeMarkdown(r *kopilka.TreeReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")

	if len(r.Tree.Roots) == 0 {
		doc.PlainText("No categories yet.")
		return doc.String()
	}

	var lines []string
	r.Nodes(func(node *kopilka.CategoryNode, depth int) {
		label := node.Name
		if node.Icon != "" {
			label = node.Icon + " " + label
		}
		if node.Scope != kopilka.ScopeBoth {
			label = fmt.Sprintf("%s (%s)", label, node.Scope)
		}
		lines = append(lines, strings.Repeat("  ", depth)+"- "+label)
	})
	doc.PlainText(strings.Join(lines, "\n"))

	return doc.String()
}
