package format

import (
	"bytes"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
)

// CheckRoundTrip formats src, checks that an independent TOML decoder accepts
// the output, formats the output again and requires a fixed point.
// It returns (ok, report string).
func CheckRoundTrip(src []byte, s Settings) (ok bool, msg string) {
	// 1) format original
	out, err := Format(src, s)
	if err != nil {
		return false, fmt.Sprintf("round-trip: initial format failed: %v", err)
	}

	// 2) the output must still be TOML
	var decoded map[string]any
	if err := toml.Unmarshal(out, &decoded); err != nil {
		return false, fmt.Sprintf("round-trip: output is not valid TOML: %v", err)
	}

	// 3) the formatted text must keep every table and key of the input
	var original map[string]any
	if err := toml.Unmarshal(src, &original); err == nil {
		if diff := cmp.Diff(keyShape(original), keyShape(decoded)); diff != "" {
			return false, "round-trip: keys changed (-input +output):\n" + diff
		}
	}

	// 4) formatting is idempotent
	again, err := Format(out, s)
	if err != nil {
		return false, fmt.Sprintf("round-trip: reformat failed: %v", err)
	}
	if !bytes.Equal(out, again) {
		return false, "round-trip: output is not a fixed point (-first +second):\n" + cmp.Diff(string(out), string(again))
	}
	return true, "round-trip: OK"
}

// keyShape reduces a decoded document to its key structure. The python pass
// may create classifiers, so that key is left out.
func keyShape(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			if k == "classifiers" {
				continue
			}
			out[k] = keyShape(child)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, child := range v {
			if m, ok := child.(map[string]any); ok {
				out = append(out, keyShape(m))
			}
		}
		return out
	}
	return nil
}
