// unwrap.go: traversal over error graphs.
//
// Frozen errors expose their children through Unwrap() []error, so the same
// traversal covers frozen trees, errors.Join results, multi-%w wraps and
// classic Unwrap() error chains.
//
// Foreign graphs may contain cycles or non-comparable error values. A map[error]
// cannot hold non-comparable dynamic types, so two guards are used:
//   - seenErr for comparable dynamic types
//   - seenPtr for pointer identity
//
// Anything else is treated as acyclic and bounded by maxWalkDepth.
package xgxresult

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

// visited tracks nodes already reached during a traversal.
type visited struct {
	seenErr map[error]struct{}
	seenPtr map[uintptr]struct{}
}

func newVisited() *visited {
	return &visited{
		seenErr: make(map[error]struct{}, 16),
		seenPtr: make(map[uintptr]struct{}, 16),
	}
}

// mark returns true if err was not seen before and records it.
func (v *visited) mark(err error) bool {
	if err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() {
		if _, ok := v.seenErr[err]; ok {
			return false
		}
		v.seenErr[err] = struct{}{}
		return true
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, ok := v.seenPtr[id]; ok {
			return false
		}
		v.seenPtr[id] = struct{}{}
	}
	return true
}

// unwrapAll returns the direct causes of err, nils removed.
func unwrapAll(err error) []error {
	switch u := err.(type) {
	case multiUnwrapper:
		kids := u.Unwrap()
		out := make([]error, 0, len(kids))
		for _, k := range kids {
			if k != nil {
				out = append(out, k)
			}
		}
		return out
	case singleUnwrapper:
		if k := u.Unwrap(); k != nil {
			return []error{k}
		}
	}
	return nil
}

// walkFrame is one pending node of a traversal with its distance from the root.
type walkFrame struct {
	err   error
	depth int
}

// Walk visits every distinct node of err's graph in pre-order, left to right.
// Traversal stops when visit returns false. Nodes deeper than maxWalkDepth are
// not expanded. Nil err or visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := newVisited()
	seen.mark(err)
	stack := []walkFrame{{err: err}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur.err) {
			return
		}
		if cur.depth >= maxWalkDepth {
			continue
		}
		kids := unwrapAll(cur.err)
		for i := len(kids) - 1; i >= 0; i-- {
			if seen.mark(kids[i]) {
				stack = append(stack, walkFrame{err: kids[i], depth: cur.depth + 1})
			}
		}
	}
}

// Flatten returns the leaves of err's graph (nodes without causes) in
// depth-first order. Nil err yields nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	Walk(err, func(e error) bool {
		if len(unwrapAll(e)) == 0 {
			out = append(out, e)
		}
		return true
	})
	return out
}
