package llmprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// GenerateObject runs req with its ResponseSchema, validates the returned JSON
// against the schema and decodes it into out. Every failure is a *ModelError.
func GenerateObject(ctx context.Context, g Generator, req *Request, out any) (*Response, error) {
	if req == nil || req.ResponseSchema == nil {
		return nil, &ModelError{Kind: KindUnclassified, Err: fmt.Errorf("%w: response schema is required", ErrInvalidRequest)}
	}

	resp, err := g.GenerateContent(ctx, req)
	if err != nil {
		return nil, Classify(err)
	}

	raw := SanitizeJSON(resp.Text())
	if raw == "" {
		return resp, schemaViolation(resp, ErrEmptyResponse)
	}

	if err := ValidateJSON(req.ResponseSchema, raw); err != nil {
		return resp, schemaViolation(resp, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return resp, schemaViolation(resp, err)
	}

	return resp, nil
}

func schemaViolation(resp *Response, err error) *ModelError {
	provider := ""
	if resp != nil {
		provider = resp.ProviderName
	}
	return &ModelError{Kind: KindSchemaViolation, Provider: provider, Err: err}
}

// SanitizeJSON removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func SanitizeJSON(text string) string {
	text = strings.TrimSpace(text)

	// Remove ```json ... ``` or ``` ... ``` blocks
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

var compiled sync.Map // *Schema -> *jsonschema.Schema

// ValidateJSON checks that raw is a JSON document conforming to s.
func ValidateJSON(s *Schema, raw string) error {
	sch, err := compile(s)
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return err
	}

	return sch.Validate(inst)
}

func compile(s *Schema) (*jsonschema.Schema, error) {
	if v, ok := compiled.Load(s); ok {
		return v.(*jsonschema.Schema), nil
	}

	b, err := json.Marshal(s.ToJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("response.schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	sch, err := c.Compile("response.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	compiled.Store(s, sch)
	return sch, nil
}
