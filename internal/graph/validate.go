package graph

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FieldError locates a single validation violation. Path is a JSON-style
// path into the candidate value (e.g. "edges[3].source").
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// ErrorStrings flattens a FieldError list into human-readable strings.
func ErrorStrings(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

// Validate checks an arbitrary parsed value (typically decoded model output)
// against the AgentGraph schema. It returns the typed graph on success, or
// the ordered list of every violation found. It never panics and never
// partially repairs the input; the reasoning field, when present, is kept on
// the returned graph so the caller decides whether to strip it.
//
// Field-level checks run first and collect all violations; the whole-graph
// referential check (edge source/target must name a declared node id) runs
// over every edge whose endpoints parsed as strings, so a dangling reference
// is reported per edge with its offending id.
func Validate(candidate any) (*AgentGraph, []FieldError) {
	c := &checker{}

	root, ok := candidate.(map[string]any)
	if !ok {
		c.addf("", "expected a JSON object, got %s", typeName(candidate))
		return nil, c.errs
	}

	c.requireString(root, "version")
	c.requireString(root, "scenario")
	c.optionalString(root, "reasoning")
	c.optionalStringSlice(root, "notes")
	c.optionalStringSlice(root, "warnings")

	nodeIDs := c.checkNodes(root)
	c.checkEdges(root, nodeIDs)

	if len(c.errs) > 0 {
		return nil, c.errs
	}

	// All checks passed; recast the candidate into the strict type.
	raw, err := json.Marshal(root)
	if err != nil {
		c.addf("", "cannot encode candidate: %v", err)
		return nil, c.errs
	}
	var g AgentGraph
	if err := json.Unmarshal(raw, &g); err != nil {
		c.addf("", "cannot decode candidate: %v", err)
		return nil, c.errs
	}
	return &g, nil
}

type checker struct {
	errs []FieldError
}

func (c *checker) add(path, msg string) {
	c.errs = append(c.errs, FieldError{Path: path, Message: msg})
}

func (c *checker) addf(path, format string, args ...any) {
	c.add(path, fmt.Sprintf(format, args...))
}

func (c *checker) checkNodes(root map[string]any) map[string]bool {
	ids := map[string]bool{}

	v, ok := root["nodes"]
	if !ok {
		c.add("nodes", "required")
		return ids
	}
	list, ok := v.([]any)
	if !ok {
		c.addf("nodes", "expected array, got %s", typeName(v))
		return ids
	}
	if len(list) == 0 {
		c.add("nodes", "must contain at least one node")
		return ids
	}

	for i, item := range list {
		path := "nodes[" + strconv.Itoa(i) + "]"
		node, ok := item.(map[string]any)
		if !ok {
			c.addf(path, "expected object, got %s", typeName(item))
			continue
		}

		id, idOK := c.requireString(node, path+".id")
		if idOK {
			if ids[id] {
				c.addf(path+".id", "duplicate node id %q", id)
			}
			ids[id] = true
		}
		c.requireString(node, path+".label")
		c.requireString(node, path+".description")
		if t, ok := c.requireString(node, path+".type"); ok && !validNodeType(t) {
			c.addf(path+".type", "unknown node type %q (must be one of %v)", t, NodeTypes)
		}

		c.optionalString(node, path+".model")
		c.optionalNumber(node, path+".temperature", 0, 2)
		for _, key := range []string{"tools", "inputs", "outputs", "triggers", "eventsPublished"} {
			c.optionalStringSlice(node, path+"."+key)
		}

		if policies, ok := c.optionalObject(node, path+".policies"); ok {
			c.optionalInt(policies, path+".policies.retries", 0)
			c.optionalNumber(policies, path+".policies.timeoutSec", 0, math.Inf(1))
			c.optionalInt(policies, path+".policies.concurrency", 1)
		}
		if metrics, ok := c.optionalObject(node, path+".metrics"); ok {
			c.optionalNumber(metrics, path+".metrics.p50LatencyMs", 0, math.Inf(1))
			c.optionalNumber(metrics, path+".metrics.successRate", 0, 1)
			c.optionalNumber(metrics, path+".metrics.costPerRunUSD", 0, math.Inf(1))
		}
		if ui, ok := c.optionalObject(node, path+".ui"); ok {
			c.optionalNumber(ui, path+".ui.x", math.Inf(-1), math.Inf(1))
			c.optionalNumber(ui, path+".ui.y", math.Inf(-1), math.Inf(1))
			c.optionalString(ui, path+".ui.color")
			c.optionalString(ui, path+".ui.icon")
		}
	}
	return ids
}

func (c *checker) checkEdges(root map[string]any, nodeIDs map[string]bool) {
	v, ok := root["edges"]
	if !ok {
		c.add("edges", "required")
		return
	}
	list, ok := v.([]any)
	if !ok {
		c.addf("edges", "expected array, got %s", typeName(v))
		return
	}

	edgeIDs := map[string]bool{}
	for i, item := range list {
		path := "edges[" + strconv.Itoa(i) + "]"
		edge, ok := item.(map[string]any)
		if !ok {
			c.addf(path, "expected object, got %s", typeName(item))
			continue
		}

		if id, ok := c.requireString(edge, path+".id"); ok {
			if edgeIDs[id] {
				c.addf(path+".id", "duplicate edge id %q", id)
			}
			edgeIDs[id] = true
		}
		source, sourceOK := c.requireString(edge, path+".source")
		target, targetOK := c.requireString(edge, path+".target")
		if kind, ok := c.requireString(edge, path+".kind"); ok && !validEdgeKind(kind) {
			c.addf(path+".kind", "unknown edge kind %q (must be one of %v)", kind, EdgeKinds)
		}
		c.optionalString(edge, path+".label")
		c.optionalString(edge, path+".condition")

		// Referential integrity needs the full node-id set, gathered above.
		if sourceOK && !nodeIDs[source] {
			c.addf(path+".source", "references unknown node id %q", source)
		}
		if targetOK && !nodeIDs[target] {
			c.addf(path+".target", "references unknown node id %q", target)
		}
	}
}

// requireString reports the value at key as a non-empty string, appending an
// error otherwise. The last path segment doubles as the key name.
func (c *checker) requireString(m map[string]any, path string) (string, bool) {
	v, ok := m[keyOf(path)]
	if !ok {
		c.add(path, "required")
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		c.addf(path, "expected string, got %s", typeName(v))
		return "", false
	}
	if s == "" {
		c.add(path, "must not be empty")
		return "", false
	}
	return s, true
}

func (c *checker) optionalString(m map[string]any, path string) {
	v, ok := m[keyOf(path)]
	if !ok || v == nil {
		return
	}
	if _, ok := v.(string); !ok {
		c.addf(path, "expected string, got %s", typeName(v))
	}
}

func (c *checker) optionalStringSlice(m map[string]any, path string) {
	v, ok := m[keyOf(path)]
	if !ok || v == nil {
		return
	}
	list, ok := v.([]any)
	if !ok {
		c.addf(path, "expected array of strings, got %s", typeName(v))
		return
	}
	for i, item := range list {
		if _, ok := item.(string); !ok {
			c.addf(path+"["+strconv.Itoa(i)+"]", "expected string, got %s", typeName(item))
		}
	}
}

func (c *checker) optionalObject(m map[string]any, path string) (map[string]any, bool) {
	v, ok := m[keyOf(path)]
	if !ok || v == nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		c.addf(path, "expected object, got %s", typeName(v))
		return nil, false
	}
	return obj, true
}

func (c *checker) optionalNumber(m map[string]any, path string, min, max float64) {
	v, ok := m[keyOf(path)]
	if !ok || v == nil {
		return
	}
	n, ok := asNumber(v)
	if !ok {
		c.addf(path, "expected number, got %s", typeName(v))
		return
	}
	if n < min || n > max {
		c.addf(path, "%v out of range [%v, %v]", n, min, max)
	}
}

func (c *checker) optionalInt(m map[string]any, path string, min int) {
	v, ok := m[keyOf(path)]
	if !ok || v == nil {
		return
	}
	n, ok := asNumber(v)
	if !ok || n != math.Trunc(n) {
		c.addf(path, "expected integer, got %v", v)
		return
	}
	if int(n) < min {
		c.addf(path, "%d must be >= %d", int(n), min)
	}
}

// keyOf extracts the final key segment from a path like "nodes[2].policies.retries".
func keyOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func validNodeType(s string) bool {
	for _, t := range NodeTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

func validEdgeKind(s string) bool {
	for _, k := range EdgeKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int, int64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
