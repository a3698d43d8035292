// Package model defines the wire types for the listings relay.
package model

import "encoding/json"

// SearchCriteria is the structured real-estate search criteria supplied by
// the caller. Every field is optional; absent fields serialize as null so the
// upstream agent sees the full shape of the criteria object. No cross-field
// validation is applied (min/max price are not ordered deliberately).
type SearchCriteria struct {
	Location      *string  `json:"location"`
	MinPrice      *int     `json:"min_price"`
	MaxPrice      *int     `json:"max_price"`
	BedsMin       *int     `json:"beds_min"`
	BathsMin      *int     `json:"baths_min"`
	PropertyTypes []string `json:"property_types"`
	Keywords      *string  `json:"keywords"`
}

// Normalize fills defaults so the serialized criteria always has the same
// shape: a nil property_types list becomes an empty one.
func (c *SearchCriteria) Normalize() {
	if c.PropertyTypes == nil {
		c.PropertyTypes = []string{}
	}
}

// ListingsRequest is the inbound body for POST /agent/listings. Criteria is
// required; a nil value means the caller omitted it.
type ListingsRequest struct {
	ConversationID string          `json:"conversation_id"`
	Limit          *int            `json:"limit"`
	Criteria       *SearchCriteria `json:"criteria"`
}

// DefaultConversationID is used when the caller does not name the run.
const DefaultConversationID = "listing-run"

// DefaultLimit is the result count requested when the caller omits limit.
const DefaultLimit = 8

// Normalize applies request defaults in place. Criteria must be non-nil.
func (r *ListingsRequest) Normalize() {
	if r.ConversationID == "" {
		r.ConversationID = DefaultConversationID
	}
	if r.Limit == nil {
		limit := DefaultLimit
		r.Limit = &limit
	}
	if r.Criteria != nil {
		r.Criteria.Normalize()
	}
}

// ListingsResponse wraps the opaque upstream payload with the original
// request context.
type ListingsResponse struct {
	ConversationID string          `json:"conversation_id"`
	Criteria       SearchCriteria  `json:"criteria"`
	AgentOutput    json.RawMessage `json:"agent_output"`
}
