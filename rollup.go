package kopilka

import "sort"

// OtherBucket is the label of the synthetic catch-all bucket.
const OtherBucket = "Other"

// Bucket is one row of a category breakdown: a top-level category label (or
// "Uncategorized", or the synthetic "Other") with its accumulated amount
// over the window. PrevPeriod and TrailingAvg are percentage changes
// against the immediately preceding window of equal length and against the
// mean of the label's non-zero monthly totals over the trailing 12 months;
// either is nil when the baseline is zero or unavailable.
type Bucket struct {
	Label       string
	Value       int64   // minor units
	Percent     float64 // share of the grand total, 0..100
	PrevPeriod  *Percent
	TrailingAvg *Percent

	// labels this bucket accumulates; a regular bucket holds itself, the
	// Other bucket tracks its hidden constituents for delta baselines.
	members []string
}

// Breakdown is the result of rolling up one direction's transactions over a
// date window into a bounded, sorted list of category buckets.
type Breakdown struct {
	Direction Direction
	Window    Range
	Total     int64 // minor units
	Buckets   []Bucket
}

// RollupCategories buckets realized transactions of one direction by
// top-level category over the window. The visible bucket count starts at
// maxVisible; the remainder is merged into "Other". While "Other" exceeds
// maxOtherShare of the grand total and hidden buckets remain, the largest
// hidden bucket is promoted, so "Other" never dominates the result. An
// exactly zero "Other" is omitted. Transfers never participate. When the
// grand total is not positive the bucket list is empty.
func RollupCategories(transactions []Transaction, dir Direction, window Range, maxVisible int, maxOtherShare float64) *Breakdown {
	breakdown := &Breakdown{Direction: dir, Window: window}
	if dir == Transfer {
		return breakdown
	}

	sums := sumByLabel(transactions, dir, window, nil)
	labels := make([]string, 0, len(sums))
	for label, value := range sums {
		breakdown.Total += value
		labels = append(labels, label)
	}
	if breakdown.Total <= 0 {
		return breakdown
	}
	// Descending by amount, ties broken by label for determinism.
	sort.Slice(labels, func(i, j int) bool {
		if sums[labels[i]] != sums[labels[j]] {
			return sums[labels[i]] > sums[labels[j]]
		}
		return labels[i] < labels[j]
	})

	visible := min(maxVisible, len(labels))
	otherValue := func() int64 {
		var v int64
		for _, label := range labels[visible:] {
			v += sums[label]
		}
		return v
	}
	for float64(otherValue()) > maxOtherShare*float64(breakdown.Total) && visible < len(labels) {
		visible++
	}

	for _, label := range labels[:visible] {
		breakdown.Buckets = append(breakdown.Buckets, Bucket{
			Label:   label,
			Value:   sums[label],
			Percent: 100 * float64(sums[label]) / float64(breakdown.Total),
			members: []string{label},
		})
	}
	if hidden := labels[visible:]; len(hidden) > 0 {
		value := otherValue()
		if value != 0 {
			breakdown.Buckets = append(breakdown.Buckets, Bucket{
				Label:   OtherBucket,
				Value:   value,
				Percent: 100 * float64(value) / float64(breakdown.Total),
				members: append([]string(nil), hidden...),
			})
		}
	}

	breakdown.computeDeltas(transactions, dir)
	return breakdown
}

// computeDeltas fills each bucket's period-over-period changes: against the
// preceding window of equal length, and against the average of non-zero
// monthly totals over the 12 months before the window's first month.
func (b *Breakdown) computeDeltas(transactions []Transaction, dir Direction) {
	previous := b.Window.Previous()
	monthEnd := b.Window.From.StartOf(Monthly)

	for i := range b.Buckets {
		bucket := &b.Buckets[i]
		keep := memberSet(bucket.members)

		prevSums := sumByLabel(transactions, dir, previous, keep)
		bucket.PrevPeriod = changePercent(bucket.Value, total(prevSums))

		var monthly []int64
		for m := 1; m <= 12; m++ {
			month := Monthly.Range(monthEnd.AddMonth(-m))
			if v := total(sumByLabel(transactions, dir, month, keep)); v != 0 {
				monthly = append(monthly, v)
			}
		}
		if len(monthly) > 0 {
			var sum int64
			for _, v := range monthly {
				sum += v
			}
			bucket.TrailingAvg = changePercent(bucket.Value, sum/int64(len(monthly)))
		}
	}
}

// sumByLabel accumulates realized, direction-matching transactions of the
// window per top-level label. Labels differing only in case or spacing land
// in one bucket, shown under the first spelling seen. A nil keep set accepts
// every label.
func sumByLabel(transactions []Transaction, dir Direction, window Range, keep map[string]struct{}) map[string]int64 {
	sums := make(map[string]int64)
	spellings := make(map[string]string)
	for _, tx := range transactions {
		if tx.Deleted || tx.Direction != dir || !tx.Realized() {
			continue
		}
		if !window.Contains(tx.Date) {
			continue
		}
		label := tx.Category.Top()
		if label == "" {
			label = Uncategorized
		}
		key := nameKey(label)
		if keep != nil {
			if _, ok := keep[key]; !ok {
				continue
			}
		}
		if first, seen := spellings[key]; seen {
			label = first
		} else {
			spellings[key] = label
		}
		sums[label] += tx.Amount
	}
	return sums
}

func memberSet(members []string) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[nameKey(m)] = struct{}{}
	}
	return set
}

func total(sums map[string]int64) int64 {
	var t int64
	for _, v := range sums {
		t += v
	}
	return t
}
