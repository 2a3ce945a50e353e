package cart

// itemRow is the minimal view of a cart line the merge decision needs.
type itemRow struct {
	id          string
	variationID *string
}

type mergeOp int

const (
	mergeInsert mergeOp = iota
	mergeUpdate
	mergeConvert
)

// resolveMerge decides what adding (product, variation) does to the lines
// already holding that product:
//
//   - a line with the same variation (or both nil) gets its quantity
//     overwritten,
//   - otherwise, when a variation is requested and a null-variation line
//     exists, that line is converted in place ("user previously added the
//     base product, now picks a specific variant"),
//   - otherwise a new line is inserted.
func resolveMerge(rows []itemRow, variationID *string) (mergeOp, string) {
	for _, row := range rows {
		if sameVariation(row.variationID, variationID) {
			return mergeUpdate, row.id
		}
	}
	if variationID != nil {
		for _, row := range rows {
			if row.variationID == nil {
				return mergeConvert, row.id
			}
		}
	}
	return mergeInsert, ""
}

func sameVariation(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
