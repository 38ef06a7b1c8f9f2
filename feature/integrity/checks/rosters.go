package checks

import (
	"context"
	"fmt"

	"figurine-manager/feature/roster"
)

// RosterReport lists which stored rosters can be read.
type RosterReport struct {
	Total   int               `json:"total"`
	Valid   []string          `json:"valid"`
	Invalid map[string]string `json:"invalid"`
	Status  string            `json:"status"` // "ok", "error"
}

// CheckRosters parses every roster document under the provider's prefix.
// The provider's cache is dropped first, so every document is read from storage.
// Unreadable documents are reported, not returned as errors; only a failed
// listing fails the check.
func CheckRosters(ctx context.Context, provider *roster.Provider) (*RosterReport, error) {
	keys, err := provider.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}

	report := &RosterReport{
		Total:   len(keys),
		Valid:   []string{},
		Invalid: make(map[string]string),
		Status:  "ok",
	}

	provider.InvalidateAll()
	for _, key := range keys {
		if _, err := provider.Document(ctx, key); err != nil {
			report.Invalid[key] = err.Error()
			report.Status = "error"
			continue
		}
		report.Valid = append(report.Valid, key)
	}

	return report, nil
}
