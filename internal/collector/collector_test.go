package collector

import (
	"errors"
	"testing"
)

func TestCollect_SetsCurrentPrice(t *testing.T) {
	bars := GenerateMockBars(2400, 80)
	col := NewCollector(&MockFetcher{Bars: bars}, "15m")

	series, err := col.Collect("GC=F", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 80 {
		t.Errorf("bar count = %d, want 80", len(series.Bars))
	}
	if series.CurrentPrice != bars[len(bars)-1].Close {
		t.Errorf("current price = %.2f, want last close %.2f", series.CurrentPrice, bars[len(bars)-1].Close)
	}
	if series.Symbol != "GC=F" {
		t.Errorf("symbol = %q", series.Symbol)
	}
}

func TestCollect_FetchError(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: errors.New("provider down")}, "15m")
	if _, err := col.Collect("SI=F", 5); err == nil {
		t.Fatal("expected error from failing fetcher")
	}
}

func TestGenerateMockBars_Chronological(t *testing.T) {
	bars := GenerateMockBars(2400, 30)
	if len(bars) != 30 {
		t.Fatalf("got %d bars", len(bars))
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			t.Fatalf("bars not ascending at %d", i)
		}
	}
}
