package maven

import (
	"github.com/matzehuels/mvnmodel/pkg/errors"
)

// Config is a trailing configuration map. The positional builders
// ([Registry.Jar], [Registry.Gem], ...) reject it: that position is reserved
// for a map-based declaration style which this package does not implement.
type Config map[string]string

func isConfig(v any) bool {
	switch v.(type) {
	case Config, map[string]string, map[string]any:
		return true
	}
	return false
}

// tokens flattens builder arguments into string tokens. Strings pass through
// and string slices are spliced in place, so ("g", []string{"a", "1.0"}) and
// ("g", "a", "1.0") tokenize identically.
func tokens(args []any) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			out = append(out, v)
		case []string:
			out = append(out, v...)
		case []any:
			inner, err := tokens(v)
			if err != nil {
				return nil, err
			}
			out = append(out, inner...)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported coordinate argument %v (%T)", arg, arg)
		}
	}
	return out, nil
}

// splitCallback strips a trailing configure callback from args.
func splitCallback(args []any) ([]any, []func(*Dependency)) {
	n := len(args)
	if n == 0 {
		return args, nil
	}
	fn, ok := args[n-1].(func(*Dependency))
	if !ok {
		return args, nil
	}
	if fn == nil {
		return args[:n-1], nil
	}
	return args[:n-1], []func(*Dependency){fn}
}

func strs(toks []string) []any {
	out := make([]any, len(toks))
	for i, t := range toks {
		out[i] = t
	}
	return out
}
