package cli

import "fmt"

// ColorArgs turns positional CLI arguments into color tool arguments:
// either a single hex color or three channel values. Channel values are
// passed through as strings and clamped by the tool.
func ColorArgs(args []string) (map[string]interface{}, error) {
	switch len(args) {
	case 1:
		return map[string]interface{}{"hex": args[0]}, nil
	case 3:
		return map[string]interface{}{"r": args[0], "g": args[1], "b": args[2]}, nil
	default:
		return nil, fmt.Errorf("expected a hex color or three channel values, got %d argument(s)", len(args))
	}
}
