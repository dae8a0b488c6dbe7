// Package api embeds the wire contract of the game endpoints.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// Endpoint paths.
const (
	PathAnswer = "/api/answer"
	PathEnd    = "/api/end"
	PathNext   = "/api/next"
)

// Spec returns the embedded OpenAPI document.
func Spec() []byte {
	return append([]byte(nil), rawSpec...)
}

// Contract validates payloads against the embedded OpenAPI document.
type Contract struct {
	doc *openapi3.T
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*Contract, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return &Contract{doc: doc}, nil
}

// ValidateResponse checks a decoded JSON body (maps, slices, float64, string, bool, nil)
// against the schema of a POST response.
func (c *Contract) ValidateResponse(path string, status int, body any) error {
	schema, err := c.schema(path, status)
	if err != nil {
		return err
	}
	if err := schema.VisitJSON(body); err != nil {
		return fmt.Errorf("%s %d: %w", path, status, err)
	}
	return nil
}

func (c *Contract) schema(path string, status int) (*openapi3.Schema, error) {
	item := c.doc.Paths.Find(path)
	if item == nil {
		return nil, fmt.Errorf("unknown path %s", path)
	}
	op := item.GetOperation(http.MethodPost)
	if op == nil {
		return nil, fmt.Errorf("no POST operation for %s", path)
	}
	ref := op.Responses.Status(status)
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("no %d response for %s", status, path)
	}
	media := ref.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("no JSON schema for %s %d", path, status)
	}
	return media.Schema.Value, nil
}
