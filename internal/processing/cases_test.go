package processing

import (
	"context"
	"errors"
	"testing"

	"rider_voc_sync/internal/reconcile"
	"rider_voc_sync/internal/voc"
)

type fakeCaseWriter struct {
	inserts    []string // sheet row ids in call order
	updates    []int64
	failInsert map[string]bool
	failUpdate map[int64]bool
}

func (f *fakeCaseWriter) InsertCase(_ context.Context, c voc.Case) error {
	if f.failInsert[c.SheetRowID] {
		return errors.New("insert rejected")
	}
	f.inserts = append(f.inserts, c.SheetRowID)
	return nil
}

func (f *fakeCaseWriter) UpdateCase(_ context.Context, id int64, _ voc.Case) error {
	if f.failUpdate[id] {
		return errors.New("update rejected")
	}
	f.updates = append(f.updates, id)
	return nil
}

func casePlan() reconcile.Plan[voc.Case, voc.CaseRecord] {
	return reconcile.Plan[voc.Case, voc.CaseRecord]{
		ToCreate: []voc.Case{
			{SheetRowID: "1", RiderID: "BC111111"},
			{SheetRowID: "2", RiderID: "BC222222"},
		},
		ToUpdate: []reconcile.Pair[voc.Case, voc.CaseRecord]{
			{Row: voc.Case{SheetRowID: "3"}, Record: voc.CaseRecord{ID: 30}},
		},
		Orphaned: []voc.CaseRecord{
			{ID: 99, Case: voc.Case{SheetRowID: "9", RiderID: "BC999999"}},
		},
		Skipped: []reconcile.Skipped[voc.Case]{
			{Row: voc.Case{RiderID: "BC000000"}, Reason: "missing row key"},
		},
	}
}

func TestApplyCasePlanCounts(t *testing.T) {
	writer := &fakeCaseWriter{}
	report := ApplyCasePlan(context.Background(), writer, casePlan(), Options{})

	if report.Created != 2 || report.Updated != 1 || report.Orphaned != 1 || report.Skipped != 1 || report.Errored != 0 {
		t.Errorf("unexpected report: %+v", report)
	}
	if len(writer.inserts) != 2 || writer.inserts[0] != "1" || writer.inserts[1] != "2" {
		t.Errorf("inserts = %v", writer.inserts)
	}
	if len(writer.updates) != 1 || writer.updates[0] != 30 {
		t.Errorf("updates = %v", writer.updates)
	}
}

func TestApplyCasePlanContinuesPastFailures(t *testing.T) {
	writer := &fakeCaseWriter{
		failInsert: map[string]bool{"1": true},
		failUpdate: map[int64]bool{30: true},
	}
	report := ApplyCasePlan(context.Background(), writer, casePlan(), Options{})

	if report.Errored != 2 {
		t.Errorf("Errored = %d, want 2", report.Errored)
	}
	// The second create still happened after the first failed
	if len(writer.inserts) != 1 || writer.inserts[0] != "2" {
		t.Errorf("inserts = %v, want only row 2", writer.inserts)
	}
	if report.Created != 1 || report.Updated != 0 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestApplyCasePlanOrphansNeverDeleted(t *testing.T) {
	writer := &fakeCaseWriter{}
	report := ApplyCasePlan(context.Background(), writer, casePlan(), Options{})

	// The fake has no delete method at all; the flow only counts orphans
	if report.Orphaned != 1 {
		t.Errorf("Orphaned = %d, want 1", report.Orphaned)
	}
}

func TestApplyCasePlanDryRun(t *testing.T) {
	writer := &fakeCaseWriter{}
	report := ApplyCasePlan(context.Background(), writer, casePlan(), Options{DryRun: true})

	if len(writer.inserts) != 0 || len(writer.updates) != 0 {
		t.Errorf("dry run must not write: inserts=%v updates=%v", writer.inserts, writer.updates)
	}
	if report.Created != 2 || report.Updated != 1 {
		t.Errorf("dry run should still count planned work: %+v", report)
	}
}
