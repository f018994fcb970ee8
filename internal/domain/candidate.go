package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// Product categories recognized by the pipeline. Free-text queries are
// mapped onto exactly one of these (or left empty when unknown).
const (
	CategoryPhone   = "Telefon"
	CategoryLaptop  = "Laptop"
	CategoryDesktop = "Masaüstü"
)

// SourceLocalDatabase tags candidates that came from the static catalog
// rather than a live scrape. Merge precedence depends on this value.
const SourceLocalDatabase = "local_database"

// ParsedQuery is the structured intent extracted from a free-text query.
// It is produced once per inbound query and never mutated afterwards.
type ParsedQuery struct {
	OriginalQuery string   `json:"originalQuery"`
	Category      string   `json:"category,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	GPUHint       string   `json:"gpuHint,omitempty"`
	CPUHint       string   `json:"cpuHint,omitempty"`
	Budget        int      `json:"budget,omitempty"` // local currency, 0 = unknown
	Features      []string `json:"features,omitempty"`
}

// FetchTask is one unit of scraping work: a product URL plus the context
// it was discovered in. Tasks are ephemeral; the orchestrator consumes
// them and they are never stored.
type FetchTask struct {
	URL      string
	Category string
	Query    string
}

// RawProduct is the unnormalized output of a site adapter. A RawProduct
// without both a name and a price is invalid and must be discarded before
// it enters the pipeline.
type RawProduct struct {
	Name   string            `json:"name"`
	Brand  string            `json:"brand,omitempty"`
	Price  float64           `json:"price,omitempty"` // 0 = unknown
	Specs  map[string]string `json:"specs,omitempty"`
	Source string            `json:"source"`
	URL    string            `json:"url"`
	Query  string            `json:"originalQuery,omitempty"`
}

// Valid reports whether the scrape produced the minimum usable fields.
func (r *RawProduct) Valid() bool {
	return r != nil && strings.TrimSpace(r.Name) != "" && r.Price > 0
}

// Candidate is the canonical unit flowing through filter, merge and
// ranking, from either the local catalog or a web fetch.
type Candidate struct {
	ID       string            `json:"id"`
	Category string            `json:"category,omitempty"`
	Name     string            `json:"name"`
	Brand    string            `json:"brand,omitempty"`
	Price    int               `json:"price,omitempty"` // 0 = unknown
	Specs    map[string]string `json:"specs,omitempty"`
	Source   string            `json:"source"`
	URL      string            `json:"url,omitempty"`
	Score    float64           `json:"score"` // 0-100, set by the ranking engine
}

// DedupKey fingerprints a candidate by its normalized (name, brand) pair.
// Two candidates with the same key are interchangeable for presentation.
func (c *Candidate) DedupKey() string {
	name := strings.ToLower(strings.TrimSpace(c.Name))
	brand := strings.ToLower(strings.TrimSpace(c.Brand))
	sum := sha1.Sum([]byte(name + "|" + brand))
	return hex.EncodeToString(sum[:])
}

// FromRawProduct converts a validated scrape result into a Candidate.
func FromRawProduct(r *RawProduct, category string) Candidate {
	sum := sha1.Sum([]byte(r.Name + "|" + r.URL))
	return Candidate{
		ID:       fmt.Sprintf("web::%s", hex.EncodeToString(sum[:])[:16]),
		Category: category,
		Name:     strings.TrimSpace(r.Name),
		Brand:    strings.TrimSpace(r.Brand),
		Price:    int(r.Price),
		Specs:    r.Specs,
		Source:   r.Source,
		URL:      r.URL,
	}
}

// SearchHit is one result returned by the external web-search provider.
type SearchHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`

	// Annotations added by the search service for debugging.
	Strategy int    `json:"searchStrategy,omitempty"`
	Site     string `json:"searchSite,omitempty"`
}
