package swaggerkit

import (
	_ "embed"
	"net/http"
	"strconv"
	"strings"
	"sync"

	perr "interventions/internal/platform/errors"
	phttp "interventions/internal/platform/net/http"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiYAML []byte

var docReader = func() []byte { return openapiYAML }

// SpecMutator edits the parsed document before it is served
type SpecMutator func(spec map[string]any)

// WithVersion sets info.version. Blank leaves it alone
func WithVersion(v string) SpecMutator {
	return func(spec map[string]any) {
		if v != "" {
			obj(spec, "info")["version"] = v
		}
	}
}

// WithTitleSuffix appends s to info.title, e.g. "(staging)"
func WithTitleSuffix(s string) SpecMutator {
	return func(spec map[string]any) {
		info := obj(spec, "info")
		if title, ok := info["title"].(string); ok && s != "" {
			info["title"] = title + " " + s
		}
	}
}

// errorExamples are added to every operation that does not document that status itself
var errorExamples = []struct {
	code  perr.ErrorCode
	msg   string
	field string
}{
	{perr.ErrorCodeValidation, "required_skills must be at least 1", "required_skills"},
	{perr.ErrorCodePanic, "internal error", ""},
	{perr.ErrorCodeTimeout, "request took longer than 30s", ""},
}

// obj returns m[key] as an object, creating it when absent or of another type
func obj(m map[string]any, key string) map[string]any {
	child, ok := m[key].(map[string]any)
	if !ok {
		child = map[string]any{}
		m[key] = child
	}
	return child
}

func buildSpec(mutators []SpecMutator) (map[string]any, error) {
	spec := map[string]any{}
	if err := yaml.Unmarshal(docReader(), &spec); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "openapi document does not parse")
	}
	if spec == nil {
		spec = map[string]any{}
	}
	ensureServers(spec, "/api/v1")
	addErrorSchema(spec)
	for _, ex := range errorExamples {
		addErrorResponse(spec, ex.code, ex.msg, ex.field)
	}
	for _, m := range mutators {
		if m != nil {
			m(spec)
		}
	}
	return spec, nil
}

// serveDocJSON builds the document on first request and serves it as JSON from then on
func serveDocJSON(mutators []SpecMutator) http.HandlerFunc {
	build := sync.OnceValues(func() (map[string]any, error) { return buildSpec(mutators) })
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := build()
		if err != nil {
			phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(err) })(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		phttp.JSON(w, http.StatusOK, spec)
	}
}

// ensureServers pins the document to OAS 3.0.3, the newest the bundled UI renders
func ensureServers(spec map[string]any, url string) {
	if v, _ := spec["openapi"].(string); v == "" || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// addErrorSchema describes the error envelope unless the document already does
func addErrorSchema(spec map[string]any) {
	schemas := obj(obj(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	prop := func(typ string) map[string]any { return map[string]any{"type": typ} }
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Envelope of every failed request",
		"required":    []any{"status_code", "status"},
		"properties": map[string]any{
			"status_code": prop("integer"),
			"status":      prop("string"),
			"code":        prop("integer"),
			"error":       prop("string"),
			"field":       prop("string"),
			"request_id":  prop("string"),
		},
	}
}

func addErrorResponse(spec map[string]any, code perr.ErrorCode, msg, field string) {
	status := perr.HTTPStatusCode(code)
	example := map[string]any{
		"status_code": status,
		"status":      http.StatusText(status),
		"code":        int(code),
		"error":       msg,
		"request_id":  "579f33bf50b1/abc-000001",
	}
	if field != "" {
		example["field"] = field
	}
	resp := map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}

	key := strconv.Itoa(status)
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, op := range ops {
			o, ok := op.(map[string]any)
			if !ok {
				continue
			}
			responses := obj(o, "responses")
			if _, ok := responses[key]; !ok {
				responses[key] = resp
			}
		}
	}
}
