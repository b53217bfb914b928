package search

import (
	"context"
	"sort"
	"strings"

	"github.com/healthsift/healthsift/internal/model"
	"github.com/healthsift/healthsift/internal/trust"
)

// boostedDomain sorts first in medical results; the national health service
// is pinned to the top regardless of API ranking.
const boostedDomain = "nhs.uk"

// MedicalClient retrieves results restricted to the trusted medical
// allow-list and enriches them with trust scores.
type MedicalClient struct {
	client   *Client
	scorer   *trust.Scorer
	engineID string
	sites    []string
}

// NewMedicalClient creates a medical search client.
func NewMedicalClient(client *Client, scorer *trust.Scorer, config model.SearchConfig) *MedicalClient {
	return &MedicalClient{
		client:   client,
		scorer:   scorer,
		engineID: config.MedicalEngineID,
		sites:    config.TrustedSites,
	}
}

// Search returns up to maxResults scored records for the query. Any
// transport, status, or parse failure is treated as zero results so a flaky
// search API never aborts the surrounding interaction.
func (m *MedicalClient) Search(ctx context.Context, query string, maxResults int) []model.SourceRecord {
	items, err := m.client.search(ctx, m.engineID, scopedQuery(query, m.sites), maxResults)
	if err != nil {
		return nil
	}

	// Stable sort on a single boolean key: boosted-domain links first,
	// original API order otherwise preserved.
	sort.SliceStable(items, func(i, j int) bool {
		return strings.Contains(items[i].Link, boostedDomain) && !strings.Contains(items[j].Link, boostedDomain)
	})

	records := make([]model.SourceRecord, 0, len(items))
	for _, it := range items {
		records = append(records, model.SourceRecord{
			Title:      it.Title,
			Link:       it.Link,
			Snippet:    it.Snippet,
			TrustScore: m.scorer.Score(it.Link, it.Snippet),
		})
	}
	return records
}
