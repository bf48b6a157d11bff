package service

import (
	"strconv"
	"strings"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// ExportText renders the item list as the copy/print text format: a "Carry
// on" section then a "Checked baggage" section, each a title line followed by
// one block per category in first-seen order. A block is a blank line, the
// category name, then one "- Name" line per item, with " xN" appended only
// when the quantity exceeds 1.
//
// The grouping and ordering must match the on-screen list exactly, so items
// are taken in their given order and only partitioned by bag and category.
func ExportText(items []model.PackingItem) string {
	var b strings.Builder
	for _, bag := range []model.Bag{model.BagCarryOn, model.BagChecked} {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(bag.Title())
		b.WriteByte('\n')

		var categories []string
		grouped := make(map[string][]model.PackingItem)
		for _, it := range items {
			if it.Bag != bag {
				continue
			}
			if _, ok := grouped[it.Category]; !ok {
				categories = append(categories, it.Category)
			}
			grouped[it.Category] = append(grouped[it.Category], it)
		}

		for _, category := range categories {
			b.WriteByte('\n')
			b.WriteString(category)
			b.WriteByte('\n')
			for _, it := range grouped[category] {
				b.WriteString("- ")
				b.WriteString(it.Name)
				if it.Quantity > 1 {
					b.WriteString(" x")
					b.WriteString(strconv.Itoa(it.Quantity))
				}
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
