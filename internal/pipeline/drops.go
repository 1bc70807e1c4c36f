package pipeline

import (
	"sort"

	"marketpanel/internal"
)

// ComputeDrops reconstructs each product's observation history from
// the record set and emits every consecutive pair where the price
// strictly decreased. Records are grouped by product name and sorted
// most-recent-first by sort key; the sort is stable so rows without a
// real timestamp keep their feed order. Zero prices are unparseable
// sentinels and never participate, on either side of a pair.
//
// Output order is not specified; callers sort by whatever dimension
// they present.
func ComputeDrops(records []internal.CanonicalRecord) []internal.DropRecord {
	groups := map[string][]internal.CanonicalRecord{}
	names := make([]string, 0)
	for _, rec := range records {
		if _, ok := groups[rec.ProductName]; !ok {
			names = append(names, rec.ProductName)
		}
		groups[rec.ProductName] = append(groups[rec.ProductName], rec)
	}

	drops := make([]internal.DropRecord, 0)
	for _, name := range names {
		group := groups[name]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SortKey() > group[j].SortKey()
		})

		// The oldest observation has no predecessor and is skipped.
		for i := 0; i+1 < len(group); i++ {
			current, previous := group[i], group[i+1]
			if current.Price <= 0 || previous.Price <= 0 {
				continue
			}
			if current.Price >= previous.Price {
				continue
			}

			amount := previous.Price - current.Price
			drops = append(drops, internal.DropRecord{
				ProductName:    current.ProductName,
				PriceCurrent:   current.Price,
				PricePrevious:  previous.Price,
				DiscountAmount: amount,
				DiscountPct:    amount / previous.Price * 100,
				Timestamp:      current.Timestamp,
				LinkURL:        current.LinkURL,
			})
		}
	}
	return drops
}
