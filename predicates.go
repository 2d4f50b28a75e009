// predicates.go: queries over error trees.
//
// Scope:
//   • Find the first frozen node matching a predicate, in pre-order.
//   • Works on any error graph; only frozen Error nodes are offered to match.
package xgxresult

// Find returns the first frozen node in err's graph for which match returns
// true, searching in pre-order.
func Find(err error, match func(Error) bool) Option[Error] {
	found := None[Error]()
	if match == nil {
		return found
	}
	Walk(err, func(e error) bool {
		if node, ok := e.(Error); ok && match(node) {
			found = Some(node)
			return false
		}
		return true
	})
	return found
}

// HasMessage reports whether any frozen node in err's graph has message msg.
func HasMessage(err error, msg string) bool {
	return Find(err, func(e Error) bool { return e.Message() == msg }).IsSome()
}
