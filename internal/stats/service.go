package stats

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// CategoryTotal is the summed value of the items carrying one category name
type CategoryTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// Dashboard summarizes the inventory
type Dashboard struct {
	TotalItems         int             `json:"total_items"`
	TotalValue         float64         `json:"total_value"`
	CategoryCount      int             `json:"category_count"`
	WarrantiesExpiring int             `json:"warranties_expiring"`
	CategoryTotals     []CategoryTotal `json:"category_totals"`
	RecentItems        []domain.Item   `json:"recent_items"`
	Version            uint64          `json:"version"`
}

// SnapshotSource provides a consistent view of the inventory
type SnapshotSource interface {
	Snapshot(ctx context.Context) inventory.Snapshot
}

// Service defines the interface for stats operations
type Service interface {
	GetDashboard(ctx context.Context) Dashboard
}

// service implements the Service interface
type service struct {
	source SnapshotSource
	clock  inventory.Clock
}

// NewService creates a new stats service
func NewService(source SnapshotSource, clock inventory.Clock) Service {
	return &service{
		source: source,
		clock:  clock,
	}
}

// GetDashboard computes the dashboard from one snapshot
func (s *service) GetDashboard(ctx context.Context) Dashboard {
	snap := s.source.Snapshot(ctx)
	d := Compute(snap.Items, snap.Categories, s.clock.Now())
	d.Version = snap.Version

	logger.FromContext(ctx).Debug(LogMsgDashboardComputed,
		"items", d.TotalItems, "total_value", d.TotalValue, "version", d.Version)
	return d
}

// Compute derives the dashboard figures from items and categories as of now.
//
// Value falls back to the purchase price when no current value is recorded. Every
// category appears in the totals, even with no items, as does any category name carried
// by items but missing from categories.
func Compute(items []domain.Item, categories []domain.Category, now time.Time) Dashboard {
	d := Dashboard{
		TotalItems:    len(items),
		CategoryCount: len(categories),
	}

	totals := make(map[string]float64, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, seen := totals[c.Name]; !seen {
			order = append(order, c.Name)
		}
		totals[c.Name] = 0
	}

	today := dateOnly(now)
	horizon := today.Add(WarrantyExpiryWindow)
	for _, item := range items {
		v := item.Value()
		d.TotalValue += v

		if _, seen := totals[item.Category]; !seen {
			order = append(order, item.Category)
		}
		totals[item.Category] += v

		if expiresWithin(item.Warranty, today, horizon) {
			d.WarrantiesExpiring++
		}
	}

	d.CategoryTotals = make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		d.CategoryTotals = append(d.CategoryTotals, CategoryTotal{Name: name, Total: totals[name]})
	}
	slices.SortStableFunc(d.CategoryTotals, func(a, b CategoryTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})

	d.RecentItems = RecentItems(items, RecentItemsLimit)
	return d
}

// RecentItems returns up to limit items with the latest purchase dates, newest first.
// Items without a parseable purchase date sort last.
func RecentItems(items []domain.Item, limit int) []domain.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.Item) int {
		ta, okA := parseDate(a.PurchaseDate)
		tb, okB := parseDate(b.PurchaseDate)
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// expiresWithin reports whether w expires between today and horizon, inclusive
func expiresWithin(w *domain.Warranty, today, horizon time.Time) bool {
	if w == nil {
		return false
	}
	expiry, ok := parseDate(w.ExpiryDate)
	if !ok {
		return false
	}
	return !expiry.Before(today) && !expiry.After(horizon)
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
