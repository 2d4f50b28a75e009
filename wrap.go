// wrap.go: bring arbitrary Go errors into the builder model.
//
//   - FromError converts one error graph into a builder tree.
//   - Join aggregates several independent failures under one message, the
//     "3 of 5 sub-tasks failed" case.
package xgxresult

// FromError converts err into a builder tree.
//
//   - nil → nil
//   - a frozen Error → converted field by field
//   - any other error → message err.Error(), children from Unwrap() error or
//     Unwrap() []error, converted recursively
//
// Cycles are cut and depth is bounded; a repeated node is not descended into
// again.
func FromError(err error) *Builder {
	if err == nil {
		return nil
	}
	return fromError(err, newVisited(), 0)
}

func fromError(err error, seen *visited, depth int) *Builder {
	if e, ok := err.(Error); ok {
		return thaw(e)
	}
	seen.mark(err)

	b := &Builder{Message: err.Error(), Data: Map{}}
	if depth >= maxWalkDepth {
		return b
	}
	for _, k := range unwrapAll(err) {
		if !seen.mark(k) {
			continue
		}
		b.Children = append(b.Children, fromError(k, seen, depth+1))
	}
	return b
}

// Join returns a builder with message whose children are the non-nil errs,
// converted with FromError. It returns nil when every err is nil.
func Join(message string, errs ...error) *Builder {
	var b *Builder
	for _, err := range errs {
		if err == nil {
			continue
		}
		if b == nil {
			b = &Builder{Message: message, Data: Map{}}
		}
		b.Children = append(b.Children, FromError(err))
	}
	return b
}
