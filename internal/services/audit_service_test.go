package services

import (
	"testing"

	"familia/internal/models"
	"familia/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	t.Run("stores_entry_with_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		svc.Log(models.AuditDeleteTransaction, models.AuditResourceTransaction, "tx-1", "10.0.0.7", "req-42",
			map[string]any{"amount": "120.50"})

		var entries []models.AuditLog
		testutil.AssertNoError(t, db.Find(&entries).Error)
		if len(entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(entries))
		}
		e := entries[0]
		if e.Action != models.AuditDeleteTransaction || e.ResourceID != "tx-1" || e.RequestID != "req-42" {
			t.Errorf("unexpected entry %+v", e)
		}
		if e.Changes != `{"amount":"120.50"}` {
			t.Errorf("unexpected changes %s", e.Changes)
		}
	})

	t.Run("nil_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		svc.Log(models.AuditCreateTransaction, models.AuditResourceTransaction, "tx-2", "", "", nil)

		var entry models.AuditLog
		testutil.AssertNoError(t, db.First(&entry).Error)
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %s", entry.Changes)
		}
	})

	t.Run("store_failure_is_swallowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		// Must not panic with a closed connection.
		svc.Log(models.AuditUpdateTransaction, models.AuditResourceTransaction, "tx-3", "", "", nil)
	})
}
