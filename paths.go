package rustdocindex

import (
	"fmt"
	"strings"

	"github.com/mgr0dzicki/rustdoc-index/rustdoc"
)

// ImportablePath is one external spelling for an item: its name components
// in root-first order, starting with the crate's own name.
type ImportablePath []string

// String renders the path in `::`-joined form, which is also the import
// index key.
func (p ImportablePath) String() string {
	return strings.Join(p, "::")
}

// ImportablePaths returns every path under which external code can import
// the item, root-first. The result is empty unless the id is present in the
// snapshot index and publicly reachable. Identical spellings may repeat when
// distinct re-export chains produce the same names; callers needing a set
// deduplicate. Repeated calls return equal results.
func (x *IndexedCrate) ImportablePaths(id rustdoc.Id) []ImportablePath {
	if _, ok := x.crate.Index[id]; !ok {
		return nil
	}
	w := &pathWalker{
		x:      x,
		active: make(map[rustdoc.Id]struct{}),
	}
	w.walk(id)
	return w.paths
}

// pathWalker carries the state of one ImportablePaths call: a DFS from the
// target item toward the root over forest parent edges, the in-progress name
// stack (leaf name first), and the path-local cycle guard.
type pathWalker struct {
	x      *IndexedCrate
	stack  []string
	active map[rustdoc.Id]struct{}
	paths  []ImportablePath
}

func (w *pathWalker) walk(id rustdoc.Id) {
	if _, seen := w.active[id]; seen {
		return
	}
	w.active[id] = struct{}{}
	defer delete(w.active, id)

	item, ok := w.x.crate.Index[id]
	if !ok {
		panic(fmt.Sprintf("rustdocindex: id %s walked but missing from the index", id))
	}

	if len(w.stack) > 0 {
		switch item.Inner.Kind() {
		case rustdoc.KindImpl, rustdoc.KindStruct, rustdoc.KindUnion:
			// These are not modules: they are importable themselves, but
			// the items inside them are not importable through them. A
			// non-empty stack means the walk came up from such an inner
			// item. Enums are deliberately not listed here, since their
			// variants are importable.
			return
		}
	}

	// Imports and typedefs may rename what they expose, so they swap the
	// name accumulated for their target with their own. Everything else
	// contributes its own name, when it has one.
	var pushed, popped *string
	switch {
	case item.Inner.Import != nil && !item.Inner.Import.Glob:
		if len(w.stack) == 0 {
			panic(fmt.Sprintf("rustdocindex: import %s reached with no name to replace", id))
		}
		p := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		popped = &p
		pushed = &item.Inner.Import.Name
	case item.Inner.Import != nil:
		// Glob imports expose contents, not themselves, and cannot rename:
		// no name to contribute.
	case item.Inner.Typedef != nil:
		if len(w.stack) > 0 {
			p := w.stack[len(w.stack)-1]
			w.stack = w.stack[:len(w.stack)-1]
			popped = &p
		}
		if item.Name == nil {
			panic(fmt.Sprintf("rustdocindex: typedef %s has no name", id))
		}
		pushed = item.Name
	default:
		pushed = item.Name
	}
	if pushed != nil {
		w.stack = append(w.stack, *pushed)
	}

	if id == w.x.crate.Root {
		path := make(ImportablePath, len(w.stack))
		for i, name := range w.stack {
			path[len(w.stack)-1-i] = name
		}
		w.paths = append(w.paths, path)
	} else {
		for _, parent := range w.x.visibilityForest[id] {
			w.walk(parent)
		}
	}

	// Unwind: the stack must leave exactly as it arrived.
	if pushed != nil {
		top := w.stack[len(w.stack)-1]
		if top != *pushed {
			panic(fmt.Sprintf("rustdocindex: name stack corrupted: pushed %q, recovered %q", *pushed, top))
		}
		w.stack = w.stack[:len(w.stack)-1]
	}
	if popped != nil {
		w.stack = append(w.stack, *popped)
	}
}
