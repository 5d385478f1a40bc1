package diag

import (
	"fmt"
	"strings"
)

// Render formats diagnostics in the source-pointer/caret format spec.md
// §6 requires of the diagnostic output ("a source-pointer format
// showing the file name, the offending span, and the error message").
// It generalizes the teacher's internal/errors.FormatErrors to BRS's
// (line, startCol, endCol) spans, underlining the whole span rather
// than a single point.
//
// Render only implements the format's CONTRACT; spec.md §1 explicitly
// keeps the renderer's algorithm a replaceable external collaborator,
// so this is a reference implementation, not a fixed wire format.
func Render(fileName, source string, diags []Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}

	lines := strings.Split(source, "\n")

	var sb strings.Builder
	if len(diags) > 1 {
		sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(diags)))
	}

	for i, d := range diags {
		if len(diags) > 1 {
			sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(diags)))
		}
		sb.WriteString(renderOne(fileName, lines, d, color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

func renderOne(fileName string, lines []string, d Diagnostic, color bool) string {
	var sb strings.Builder

	kind := "Error"
	if d.Severity == SeverityWarning {
		kind = "Warning"
	}

	if fileName != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d: %s\n", kind, fileName, d.Span.Line+1, d.Span.StartCol+1, d.Kind))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d: %s\n", kind, d.Span.Line+1, d.Span.StartCol+1, d.Kind))
	}

	if d.Span.Line >= 0 && d.Span.Line < len(lines) {
		line := lines[d.Span.Line]
		lineNumStr := fmt.Sprintf("%4d | ", d.Span.Line+1)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Span.StartCol))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString(strings.Repeat("^", d.Span.Width()))
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}
