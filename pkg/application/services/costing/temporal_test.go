package costing

import (
	"testing"
	"time"

	"github.com/makerops/costing/pkg/domain/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func steelRodHistory() []entities.CostRecord {
	// Deliberately unordered
	return []entities.CostRecord{
		{ItemID: "STEEL_ROD", EffectiveDate: date(2025, 3, 1), CostPrice: 1200},
		{ItemID: "STEEL_ROD", EffectiveDate: date(2025, 1, 1), CostPrice: 1000},
		{ItemID: "STEEL_ROD", EffectiveDate: date(2025, 2, 1), CostPrice: 1100},
	}
}

func TestFindEffectiveCost(t *testing.T) {
	history := steelRodHistory()

	tests := []struct {
		name     string
		target   time.Time
		expected entities.Cents
		wantNil  bool
	}{
		{"before first record", date(2024, 12, 31), 0, true},
		{"exactly first record", date(2025, 1, 1), 1000, false},
		{"between records", date(2025, 2, 15), 1100, false},
		{"exactly a record date", date(2025, 2, 1), 1100, false},
		{"after last record holds last value", date(2025, 4, 1), 1200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := FindEffectiveCost(history, tt.target)
			if tt.wantNil {
				if rec != nil {
					t.Fatalf("Expected no effective record, got %+v", rec)
				}
				return
			}
			if rec == nil {
				t.Fatal("Expected an effective record, got none")
			}
			if rec.CostPrice != tt.expected {
				t.Errorf("Expected cost %d, got %d", tt.expected, rec.CostPrice)
			}
		})
	}
}

func TestFindEffectiveCost_EmptyHistory(t *testing.T) {
	if rec := FindEffectiveCost(nil, date(2025, 1, 1)); rec != nil {
		t.Errorf("Expected nil for empty history, got %+v", rec)
	}
}

func TestFindEffectiveCost_SameDateLastWins(t *testing.T) {
	history := []entities.CostRecord{
		{ItemID: "FRAME_PLATE", EffectiveDate: date(2025, 1, 1), CostPrice: 500},
		{ItemID: "FRAME_PLATE", EffectiveDate: date(2025, 1, 1), CostPrice: 525},
	}

	rec := FindEffectiveCost(history, date(2025, 6, 1))
	if rec == nil {
		t.Fatal("Expected an effective record, got none")
	}
	if rec.CostPrice != 525 {
		t.Errorf("Expected the later-inserted record (525) to win, got %d", rec.CostPrice)
	}
}

func TestFindEffectiveCost_ZeroDateExcluded(t *testing.T) {
	history := []entities.CostRecord{
		{ItemID: "FRAME_PLATE", EffectiveDate: time.Time{}, CostPrice: 999},
		{ItemID: "FRAME_PLATE", EffectiveDate: date(2025, 1, 1), CostPrice: 500},
	}

	rec := FindEffectiveCost(history, date(2025, 6, 1))
	if rec == nil {
		t.Fatal("Expected an effective record, got none")
	}
	if rec.CostPrice != 500 {
		t.Errorf("Expected zero-dated record to be excluded, got cost %d", rec.CostPrice)
	}

	onlyMalformed := []entities.CostRecord{
		{ItemID: "FRAME_PLATE", EffectiveDate: time.Time{}, CostPrice: 999},
	}
	if rec := FindEffectiveCost(onlyMalformed, date(2025, 6, 1)); rec != nil {
		t.Errorf("Expected nil when every record is zero-dated, got %+v", rec)
	}
}

func TestFindEffectiveCost_Monotonicity(t *testing.T) {
	history := steelRodHistory()

	// As the query date advances, the resolved record never looks backward
	var prev *entities.CostRecord
	for day := 0; day < 120; day += 7 {
		target := date(2024, 12, 15).AddDate(0, 0, day)
		rec := FindEffectiveCost(history, target)
		if rec == nil {
			continue
		}
		if prev != nil && rec.EffectiveDate.Before(prev.EffectiveDate) {
			t.Fatalf("Resolved record went backward at %s: %s < %s",
				target, rec.EffectiveDate, prev.EffectiveDate)
		}
		prev = rec
	}
}
