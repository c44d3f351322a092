package translator

import "reflect"

// valueEqual reports structural equality between derived values. Strings
// and other comparable scalars take the fast path; tuples and lists fall
// back to a deep comparison so that de-duplication sees ("a", 1) and
// ("a", 1) as the same value.
func valueEqual(a, b any) bool {
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		return ok && sa == sb
	}
	return reflect.DeepEqual(a, b)
}
