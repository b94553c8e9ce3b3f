package renderer

import (
	"bytes"
	"fmt"

	"github.com/mkraev/kopilka"
	md "github.com/nao1215/markdown"
)

func NetWorthMarkdown(r *kopilka.NetWorthReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth %s", r.Range))
	if r.Latest.Known {
		doc.PlainText(fmt.Sprintf("Net worth on %s: %s", r.Latest.Date, r.Latest.Value))
	} else {
		doc.PlainText(fmt.Sprintf("Net worth on %s: unknown (missing exchange rates)", r.Range.To))
	}
	if r.Change != nil {
		doc.PlainText(fmt.Sprintf("Change since %s: %s", r.Range.From, r.Change.SignedString()))
	}

	doc.H2("Items")
	items := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Name", "Kind", "Value"},
		Rows:   [][]string{},
	}
	for _, line := range r.Items {
		value := "?"
		if line.Known {
			value = line.Value.String()
		}
		items.Rows = append(items.Rows, []string{line.Name, line.Kind.String(), value})
	}
	doc.Table(items)

	doc.H2("History")
	history := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Net Worth", "Status"},
		Rows:   [][]string{},
	}
	for _, day := range r.Series.Days() {
		value, status := "?", "unknown"
		if day.Known {
			value = day.Value.String()
			if day.Date.After(r.Today) {
				status = "projected"
			} else {
				status = "realized"
			}
		}
		history.Rows = append(history.Rows, []string{day.Date.String(), value, status})
	}
	doc.Table(history)

	return doc.String()
}
