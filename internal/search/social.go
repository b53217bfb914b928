package search

import (
	"context"

	"github.com/healthsift/healthsift/internal/model"
	"github.com/healthsift/healthsift/internal/trust"
)

// socialPenalty is subtracted from every social result's trust score. Social
// content is inherently less reliable than the same domain tier suggests.
const socialPenalty = 1.0

// SocialClient retrieves results from social platforms, one platform at a
// time, with a flat trust-score penalty applied.
type SocialClient struct {
	client   *Client
	scorer   *trust.Scorer
	engineID string
	sites    []string
}

// NewSocialClient creates a social search client.
func NewSocialClient(client *Client, scorer *trust.Scorer, config model.SearchConfig) *SocialClient {
	return &SocialClient{
		client:   client,
		scorer:   scorer,
		engineID: config.SocialEngineID,
		sites:    config.SocialSites,
	}
}

// Search issues one call per configured platform, strictly sequentially, and
// concatenates the results in platform order. A failing platform contributes
// zero results and never aborts retrieval from the others.
func (s *SocialClient) Search(ctx context.Context, query string, perSite int) []model.SourceRecord {
	var records []model.SourceRecord
	for _, site := range s.sites {
		items, err := s.client.search(ctx, s.engineID, scopedQuery(query, []string{site}), perSite)
		if err != nil {
			continue
		}

		for _, it := range items {
			records = append(records, model.SourceRecord{
				Title:      it.Title,
				Link:       it.Link,
				Snippet:    it.Snippet,
				TrustScore: penalize(s.scorer.Score(it.Link, it.Snippet)),
			})
		}
	}
	return records
}

// penalize applies the social trust penalty, floored at the minimum score.
func penalize(score float64) float64 {
	score -= socialPenalty
	if score < trust.MinScore {
		score = trust.MinScore
	}
	return score
}
