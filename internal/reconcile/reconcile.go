// Package reconcile classifies sheet rows against store records by a
// stable row key. The key — not physical row position — is the join
// column, so a re-ordered or re-filtered worksheet still matches.
package reconcile

// MissingKeyPolicy decides what happens to a sheet row whose key is
// empty. The two sync flows disagree here, so the caller must pick one
// policy and apply it for the whole run.
type MissingKeyPolicy int

const (
	// SkipMissingKey drops keyless rows; each skip is reported with a
	// reason so the operator can fix the sheet.
	SkipMissingKey MissingKeyPolicy = iota
	// CreateMissingKey classifies keyless rows as creates without any
	// matching attempt.
	CreateMissingKey
)

// Pair couples a sheet row with the store record it updates.
type Pair[S, R any] struct {
	Row    S
	Record R
}

// Skipped is a sheet row excluded from the plan, with the reason.
type Skipped[S any] struct {
	Row    S
	Reason string
}

// Plan is the output of one reconciliation pass: three disjoint sets
// plus the rows that were skipped under the missing-key policy.
type Plan[S, R any] struct {
	ToCreate []S
	ToUpdate []Pair[S, R]
	Orphaned []R
	Skipped  []Skipped[S]
}

// Reconcile classifies rows against records. rowKey and recordKey
// report the stable key of an element and whether it has one.
//
// Rows are processed in input order. When two rows share a key, the
// later row wins: it replaces the earlier row's create or update entry
// in place rather than producing a second entry. Orphaned is every
// keyed record whose key appears in no row, in record order, exactly
// once.
func Reconcile[S, R any](
	rows []S,
	records []R,
	rowKey func(S) (string, bool),
	recordKey func(R) (string, bool),
	policy MissingKeyPolicy,
) Plan[S, R] {
	byKey := make(map[string]R, len(records))
	for _, record := range records {
		if key, ok := recordKey(record); ok {
			byKey[key] = record
		}
	}

	var plan Plan[S, R]
	seen := make(map[string]struct{}, len(rows))

	// Position of each key's entry in ToCreate / ToUpdate, for the
	// explicit last-write-wins replacement.
	createIndex := make(map[string]int)
	updateIndex := make(map[string]int)

	for _, row := range rows {
		key, ok := rowKey(row)
		if !ok {
			switch policy {
			case CreateMissingKey:
				plan.ToCreate = append(plan.ToCreate, row)
			default:
				plan.Skipped = append(plan.Skipped, Skipped[S]{Row: row, Reason: "missing row key"})
			}
			continue
		}
		seen[key] = struct{}{}

		if record, matched := byKey[key]; matched {
			if i, dup := updateIndex[key]; dup {
				plan.ToUpdate[i] = Pair[S, R]{Row: row, Record: record}
			} else {
				updateIndex[key] = len(plan.ToUpdate)
				plan.ToUpdate = append(plan.ToUpdate, Pair[S, R]{Row: row, Record: record})
			}
			continue
		}

		if i, dup := createIndex[key]; dup {
			plan.ToCreate[i] = row
		} else {
			createIndex[key] = len(plan.ToCreate)
			plan.ToCreate = append(plan.ToCreate, row)
		}
	}

	for _, record := range records {
		key, ok := recordKey(record)
		if !ok {
			continue
		}
		if _, present := seen[key]; !present {
			plan.Orphaned = append(plan.Orphaned, record)
		}
	}

	return plan
}
