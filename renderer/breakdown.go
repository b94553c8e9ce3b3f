package renderer

import (
	"bytes"
	"fmt"

	"github.com/mkraev/kopilka"
	md "github.com/nao1215/markdown"
)

func BreakdownMarkdown(r *kopilka.BreakdownReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s by category %s", title(r.Direction), r.Window))

	if len(r.Breakdown.Buckets) == 0 {
		doc.PlainText(fmt.Sprintf("No realized %s in this window.", r.Direction))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Total: %s", kopilka.RUB(r.Breakdown.Total)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Category", "Amount", "Share", "vs Prev", "vs 12m Avg"},
		Rows:   [][]string{},
	}
	for _, b := range r.Breakdown.Buckets {
		table.Rows = append(table.Rows, []string{
			b.Label,
			kopilka.RUB(b.Value).String(),
			fmt.Sprintf("%.1f%%", b.Percent),
			delta(b.PrevPeriod),
			delta(b.TrailingAvg),
		})
	}
	doc.Table(table)

	return doc.String()
}

func title(dir kopilka.Direction) string {
	if dir == kopilka.Income {
		return "Income"
	}
	return "Spending"
}
