package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Role is a semantic purpose an element can fulfil on a product page
type Role string

const (
	RoleProductName  Role = "product_name"
	RolePrice        Role = "price"
	RoleSKU          Role = "sku"
	RoleQuantity     Role = "quantity"
	RoleQuantityUp   Role = "quantity_up"
	RoleQuantityDown Role = "quantity_down"
	RoleAddToCart    Role = "add_to_cart"
)

// Roles lists every role in display order
var Roles = []Role{
	RoleProductName,
	RolePrice,
	RoleSKU,
	RoleQuantity,
	RoleQuantityUp,
	RoleQuantityDown,
	RoleAddToCart,
}

// Label returns the human readable name of the role
func (r Role) Label() string {
	switch r {
	case RoleProductName:
		return "Product Name"
	case RolePrice:
		return "Price"
	case RoleSKU:
		return "SKU"
	case RoleQuantity:
		return "Quantity Input"
	case RoleQuantityUp:
		return "Quantity Up Button"
	case RoleQuantityDown:
		return "Quantity Down Button"
	case RoleAddToCart:
		return "Add to Cart Button"
	default:
		return string(r)
	}
}

// SelectorResult maps a role to the selector found for it.
// A role missing from the map had no matching element.
type SelectorResult map[Role]string

// Lookup returns the selector for a role and whether one was found
func (r SelectorResult) Lookup(role Role) (string, bool) {
	s, ok := r[role]
	return s, ok
}

// Found returns the number of roles that have a selector
func (r SelectorResult) Found() int {
	return len(r)
}

// MarshalJSON writes every role in display order. Roles without a
// selector are written as null.
func (r SelectorResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, role := range Roles {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(role))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		sel, ok := r[role]
		if !ok {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(sel)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a mapping written by MarshalJSON, dropping null roles
func (r *SelectorResult) UnmarshalJSON(data []byte) error {
	var raw map[Role]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(SelectorResult, len(raw))
	for role, sel := range raw {
		if sel != nil {
			out[role] = *sel
		}
	}
	*r = out
	return nil
}

// Match describes how a role was resolved, used by explain output
type Match struct {
	Role     Role   `json:"role"`
	Selector string `json:"selector,omitempty"`
	Step     string `json:"step,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Text     string `json:"text,omitempty"`
}

// PageData is the rendered page returned by a fetcher
type PageData struct {
	URL          string    `json:"url"`
	FinalURL     string    `json:"final_url,omitempty"`
	StatusCode   int       `json:"status_code,omitempty"`
	Title        string    `json:"title,omitempty"`
	HTML         string    `json:"html,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
	ResponseTime int64     `json:"response_time_ms"`
}

// Report is the outcome of analysing one product page
type Report struct {
	AnalysisID   string         `json:"analysis_id"`
	URL          string         `json:"url"`
	FinalURL     string         `json:"final_url,omitempty"`
	Domain       string         `json:"domain"`
	Engine       string         `json:"engine"`
	StatusCode   int            `json:"status_code,omitempty"`
	Title        string         `json:"title,omitempty"`
	Selectors    SelectorResult `json:"selectors"`
	Matches      []Match        `json:"matches,omitempty"`
	FetchedAt    time.Time      `json:"fetched_at"`
	ResponseTime int64          `json:"response_time_ms"`
}

// EngineName identifies a page fetcher implementation
type EngineName string

const (
	EngineDynamic EngineName = "dynamic"
	EngineRod     EngineName = "rod"
	EngineStatic  EngineName = "static"
)

// RequestOptions contains options for fetching a page
type RequestOptions struct {
	URL        string
	Timeout    time.Duration
	Wait       time.Duration
	UserAgent  string
	Proxy      string
	ChromePath string
	Headless   bool
	Headers    map[string]string
}
