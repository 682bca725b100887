package store

import (
	"testing"
	"time"

	"sellerpulse/internal/importer"
)

func TestReconcileProfit(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		revenue       string
		costPrice     string
		wantTotalCost string
		wantProfit    string
	}{
		{"simple margin", 3, "29.97", "4.50", "13.50", "16.47"},
		{"zero cost keeps full margin", 2, "19.98", "0.00", "0.00", "19.98"},
		{"loss making sale", 1, "5.00", "7.25", "7.25", "-2.25"},
		{"single unit", 1, "9.99", "3.33", "3.33", "6.66"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := importer.SalesRecord{
				SKU:          "SKU-1",
				Quantity:     tt.quantity,
				TotalRevenue: tt.revenue,
			}
			totalCost, profit, err := reconcileProfit(sale, tt.costPrice)
			if err != nil {
				t.Fatalf("reconcileProfit() error = %v", err)
			}
			if totalCost != tt.wantTotalCost {
				t.Errorf("totalCost = %q, want %q", totalCost, tt.wantTotalCost)
			}
			if profit != tt.wantProfit {
				t.Errorf("profit = %q, want %q", profit, tt.wantProfit)
			}
		})
	}
}

func TestReconcileProfit_BadInput(t *testing.T) {
	sale := importer.SalesRecord{SKU: "SKU-1", Quantity: 1, TotalRevenue: "10.00"}
	if _, _, err := reconcileProfit(sale, "not-a-number"); err == nil {
		t.Error("reconcileProfit() with bad cost price should fail")
	}

	sale.TotalRevenue = "garbage"
	if _, _, err := reconcileProfit(sale, "1.00"); err == nil {
		t.Error("reconcileProfit() with bad revenue should fail")
	}
}

func TestGoalInput_Validate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  GoalInput
		wantOK bool
	}{
		{"valid revenue goal", GoalInput{Name: "Q1 revenue", Metric: "revenue", Target: "5000.00", PeriodStart: start, PeriodEnd: end}, true},
		{"valid units goal", GoalInput{Name: "Q1 units", Metric: "units", Target: "100", PeriodStart: start, PeriodEnd: end}, true},
		{"missing name", GoalInput{Metric: "revenue", Target: "5000.00", PeriodStart: start, PeriodEnd: end}, false},
		{"unknown metric", GoalInput{Name: "bad", Metric: "velocity", Target: "1", PeriodStart: start, PeriodEnd: end}, false},
		{"inverted period", GoalInput{Name: "bad", Metric: "profit", Target: "1", PeriodStart: end, PeriodEnd: start}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate() error = %v, wantOK %v", err, tt.wantOK)
			}
		})
	}
}
