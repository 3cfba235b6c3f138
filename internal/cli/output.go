package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	stdout io.Writer
	stderr io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(stdout, stderr io.Writer, format string) *Output {
	return &Output{stdout: stdout, stderr: stderr, format: format}
}

// PrintDocument outputs a JSON document in the configured format
func (o *Output) PrintDocument(doc json.RawMessage) error {
	if o.format == "json" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			return err
		}
		fmt.Fprintln(o.stdout, buf.String())
		return nil
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return err
	}
	o.printValue(v, 0)
	return nil
}

// PrintMeta outputs where the document came from
func (o *Output) PrintMeta(resp *Response) {
	source := resp.Source
	if source == "" {
		source = "unknown"
	}
	fmt.Fprintf(o.stderr, "Source: %s\n", source)
	if resp.RequestID != "" {
		fmt.Fprintf(o.stderr, "Request ID: %s\n", resp.RequestID)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	fmt.Fprintln(o.stdout, msg)
}

// printValue renders decoded JSON as an indented key/value outline
func (o *Output) printValue(v any, depth int) {
	indent := strings.Repeat("  ", depth)

	switch val := v.(type) {
	case map[string]any:
		if len(val) == 0 {
			fmt.Fprintf(o.stdout, "%s(empty)\n", indent)
			return
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if isScalar(val[k]) {
				fmt.Fprintf(o.stdout, "%s%s: %s\n", indent, k, formatScalar(val[k]))
				continue
			}
			fmt.Fprintf(o.stdout, "%s%s:\n", indent, k)
			o.printValue(val[k], depth+1)
		}
	case []any:
		if len(val) == 0 {
			fmt.Fprintf(o.stdout, "%s(none)\n", indent)
			return
		}
		for i, item := range val {
			if isScalar(item) {
				fmt.Fprintf(o.stdout, "%s- %s\n", indent, formatScalar(item))
				continue
			}
			fmt.Fprintf(o.stdout, "%s[%d]\n", indent, i)
			o.printValue(item, depth+1)
		}
	default:
		fmt.Fprintf(o.stdout, "%s%s\n", indent, formatScalar(val))
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	default:
		return true
	}
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprint(val)
	}
}
