package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"

	"c4ctexts/internal/core/version"
)

// SpecMutator lets modules add paths and schemas to the served OpenAPI document
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register adds a spec mutator; modules call it from their constructor
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Spec builds the OpenAPI document from the skeleton plus every registered mutator
func Spec() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "c4ctexts API",
			"description": "Resolves CRM tickets into their internal memos and e-mail notes",
			"version":     version.Get().Version,
		},
		"servers": []any{map[string]any{"url": "/"}},
		"paths":   map[string]any{},
	}
	mu.RLock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.RUnlock()
	for _, m := range ms {
		m(spec)
	}
	ensureErrorResponseDefinition(spec)
	addDefaultErrors(spec)
	return spec
}

// serveDocJSON serves the assembled spec
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Spec())
	}
}

// Schemas returns components.schemas, creating the maps on first use
func Schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	return schemas
}

// Paths returns the paths map, creating it on first use
func Paths(spec map[string]any) map[string]any {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	return paths
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := Schemas(spec)
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorResponse(description string, example map[string]any) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// addDefaultErrors walks every operation and injects 400, 500 and 502 responses when absent
func addDefaultErrors(spec map[string]any) {
	defaults := map[string]map[string]any{
		"400": errorResponse("Bad Request", map[string]any{
			"status_code": 400, "status": "Bad Request", "code": 6, "error": "ticketId is required.",
		}),
		"500": errorResponse("Internal Server Error", map[string]any{
			"status_code": 500, "status": "Internal Server Error", "code": 1, "error": "panic recovered",
		}),
		"502": errorResponse("Bad Gateway", map[string]any{
			"status_code": 502, "status": "Bad Gateway", "code": 10, "error": "Upstream error 401: Unauthorized",
		}),
	}
	for _, p := range Paths(spec) {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			for code, resp := range defaults {
				if _, exists := responses[code]; !exists {
					responses[code] = resp
				}
			}
		}
	}
}
