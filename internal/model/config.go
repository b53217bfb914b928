package model

import (
	"fmt"
	"time"
)

// Config is the complete healthsift configuration. It is assembled once at
// startup (defaults, config file, environment, flags) and injected into each
// component at construction; no component reads process-wide state directly.
type Config struct {
	Search   SearchConfig   `yaml:"search"`
	Trust    TrustConfig    `yaml:"trust"`
	Triage   TriageConfig   `yaml:"triage"`
	LLM      LLMConfig      `yaml:"llm"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Output   OutputConfig   `yaml:"output"`
}

// SearchConfig configures the restricted web-search clients.
type SearchConfig struct {
	// APIKey for the search API (GOOGLE_API_KEY)
	APIKey string `yaml:"api_key"`

	// MedicalEngineID is the search-scope identifier for trusted medical sites
	MedicalEngineID string `yaml:"medical_engine_id"`

	// SocialEngineID is the search-scope identifier for social platforms
	SocialEngineID string `yaml:"social_engine_id"`

	// BaseURL of the search endpoint (overridable for tests)
	BaseURL string `yaml:"base_url"`

	// TrustedSites are site: qualifiers appended to every medical query
	TrustedSites []string `yaml:"trusted_sites"`

	// SocialSites are site: qualifiers searched one platform at a time
	SocialSites []string `yaml:"social_sites"`

	// MaxResults caps results per medical search
	MaxResults int `yaml:"max_results"`

	// ResultsPerSite caps results per social platform
	ResultsPerSite int `yaml:"results_per_site"`

	// Timeout for a single search request
	Timeout time.Duration `yaml:"timeout"`
}

// TrustConfig configures the trust scorer's tier cascade and recency bonus.
// Tiers match on host substrings, first tier wins; the bare "gov" and "edu"
// entries deliberately match any host containing them.
type TrustConfig struct {
	TopTierDomains    []string `yaml:"top_tier_domains"`    // score 5.0
	GovEduDomains     []string `yaml:"gov_edu_domains"`     // score 4.5
	ConsumerDomains   []string `yaml:"consumer_domains"`    // score 4.0
	LiteratureDomains []string `yaml:"literature_domains"`  // score 3.5
	RecencyYears      []string `yaml:"recency_years"`       // +0.5 if any appears in the snippet
}

// TriageConfig holds the severity keyword tables and the risk advisory table.
type TriageConfig struct {
	// Immediate keywords are checked before Urgent; order is significant
	ImmediateKeywords []string `yaml:"immediate_keywords"`
	UrgentKeywords    []string `yaml:"urgent_keywords"`

	// Advisories is an ordered keyword -> advisory table; overlapping keywords
	// are matched independently and never deduplicated
	Advisories []Advisory `yaml:"advisories"`
}

// Advisory pairs a risk keyword with its static cautionary text.
type Advisory struct {
	Keyword string `yaml:"keyword"`
	Text    string `yaml:"text"`
}

// LLMConfig configures the completion provider.
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for OpenAI/Anthropic
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints (e.g. Ollama)
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens"`
}

// FeedbackConfig configures the feedback sheet sink.
type FeedbackConfig struct {
	// SpreadsheetID of the feedback sheet
	SpreadsheetID string `yaml:"spreadsheet_id"`

	// SheetRange is the A1-notation range rows are appended to
	SheetRange string `yaml:"sheet_range"`

	// APIKey for the sheets API (falls back to the search API key)
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL of the sheets endpoint (overridable for tests)
	BaseURL string `yaml:"base_url"`

	// Timeout for append requests
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in configuration, matching the assistant's
// stock allow-lists and keyword tables.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			BaseURL: "https://www.googleapis.com/customsearch/v1",
			TrustedSites: []string{
				"site:nhs.uk", "site:nih.gov", "site:mayoclinic.org", "site:who.int",
				"site:cdc.gov", "site:clevelandclinic.org", "site:health.harvard.edu",
				"site:pubmed.ncbi.nlm.nih.gov", "site:webmd.com", "site:medlineplus.gov",
			},
			SocialSites:    []string{"site:reddit.com", "site:healthunlocked.com"},
			MaxResults:     5,
			ResultsPerSite: 5,
			Timeout:        15 * time.Second,
		},
		Trust: TrustConfig{
			TopTierDomains:    []string{"nhs.uk", "cdc.gov", "who.int", "mayoclinic.org", "clevelandclinic.org"},
			GovEduDomains:     []string{"gov", "edu", "health.harvard.edu"},
			ConsumerDomains:   []string{"webmd.com", "medlineplus.gov"},
			LiteratureDomains: []string{"pubmed"},
			RecencyYears:      []string{"2024", "2023", "2022"},
		},
		Triage: TriageConfig{
			ImmediateKeywords: []string{"chest pain", "vision loss", "stroke", "aneurysm", "severe headache"},
			UrgentKeywords:    []string{"high fever", "severe pain", "vomiting", "sudden dizziness"},
			Advisories: []Advisory{
				{"antibiotics", "Misuse of antibiotics can lead to antibiotic resistance."},
				{"vaccines", "Vaccines do not cause autism; they are safe and thoroughly tested."},
				{"ibuprofen", "Long-term use of ibuprofen may cause kidney or stomach problems."},
				{"detox", "Your body detoxifies naturally; detox teas or regimens are often unnecessary and risky."},
				{"fatigue", "Persistent fatigue might signal anemia, thyroid issues, or depression."},
				{"vision loss", "Sudden vision loss is a medical emergency. Seek immediate care."},
				{"headache", "Sudden severe headache could mean stroke. Don't delay medical help."},
				{"chest pain", "Chest pain might indicate a heart attack. Go to the ER immediately."},
				{"rash", "If rash is accompanied by fever or trouble breathing, see a doctor quickly."},
			},
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Feedback: FeedbackConfig{
			SheetRange: "Sheet1!A:B",
			BaseURL:    "https://sheets.googleapis.com/v4/spreadsheets",
			Timeout:    10 * time.Second,
		},
		Output: OutputConfig{},
	}
}

// ValidateSearch checks that the medical search scope is usable. Called at
// command startup so missing credentials fail fast, never mid-operation.
func (c *Config) ValidateSearch() error {
	if c.Search.APIKey == "" {
		return fmt.Errorf("search API key not set (GOOGLE_API_KEY or search.api_key)")
	}
	if c.Search.MedicalEngineID == "" {
		return fmt.Errorf("medical search engine id not set (search.medical_engine_id)")
	}
	return nil
}

// ValidateSocial checks that the social search scope is usable.
func (c *Config) ValidateSocial() error {
	if c.Search.APIKey == "" {
		return fmt.Errorf("search API key not set (GOOGLE_API_KEY or search.api_key)")
	}
	if c.Search.SocialEngineID == "" {
		return fmt.Errorf("social search engine id not set (search.social_engine_id)")
	}
	return nil
}

// ValidateFeedback checks that the feedback sink is usable.
func (c *Config) ValidateFeedback() error {
	if c.Feedback.SpreadsheetID == "" {
		return fmt.Errorf("feedback spreadsheet id not set (feedback.spreadsheet_id)")
	}
	if c.Feedback.APIKey == "" && c.Search.APIKey == "" {
		return fmt.Errorf("feedback API key not set (feedback.api_key)")
	}
	return nil
}
