// Package resource defines the unified record for inventoried cloud resources.
package resource

import "time"

// Resource represents one discovered cloud resource in unified format.
// Listings are flattened into these records and then mapped to workbook rows.
type Resource struct {
	ID        string            `json:"id"`         // Unique identifier (e.g., "i-abc123")
	Type      string            `json:"type"`       // Resource category (e.g., "ec2", "rds")
	Region    string            `json:"region"`     // Region the listing came from
	Account   string            `json:"account"`    // AWS account ID
	Name      string            `json:"name"`       // Human-readable name
	Status    string            `json:"status"`     // Current status (e.g., "running")
	Labels    map[string]string `json:"labels"`     // Resource tags
	Attrs     map[string]string `json:"attrs"`      // Category-specific attributes
	CreatedAt time.Time         `json:"created_at"` // Creation time, zero when unknown
}

// Attr returns the named attribute or "" when absent.
func (r Resource) Attr(key string) string {
	if r.Attrs == nil {
		return ""
	}
	return r.Attrs[key]
}

// Created formats the creation time for a spreadsheet cell.
// A zero time renders as the empty string so reruns stay byte-identical.
func (r Resource) Created() string {
	if r.CreatedAt.IsZero() {
		return ""
	}
	return r.CreatedAt.UTC().Format(time.RFC3339)
}
