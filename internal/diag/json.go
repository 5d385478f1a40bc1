package diag

import (
	"github.com/tidwall/sjson"
)

// RenderJSON renders diagnostics as a machine-readable JSON document for
// editor/CI consumption, built incrementally with sjson.Set rather than
// a marshalled struct so that each diagnostic can be appended without
// holding the whole document in memory as Go values.
//
// Shape:
//
//	{"file": "...", "diagnostics": [{"kind": "...", "severity": "...",
//	 "line": 0, "startCol": 0, "endCol": 0, "message": "..."}]}
func RenderJSON(fileName string, diags []Diagnostic) (string, error) {
	doc := "{}"
	var err error

	doc, err = sjson.Set(doc, "file", fileName)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "diagnostics", []any{})
	if err != nil {
		return "", err
	}

	for _, d := range diags {
		severity := "error"
		if d.Severity == SeverityWarning {
			severity = "warning"
		}

		doc, err = sjson.Set(doc, "diagnostics.-1", map[string]any{
			"kind":     d.Kind.String(),
			"severity": severity,
			"line":     d.Span.Line,
			"startCol": d.Span.StartCol,
			"endCol":   d.Span.EndCol,
			"message":  d.Message,
		})
		if err != nil {
			return "", err
		}
	}

	return doc, nil
}
