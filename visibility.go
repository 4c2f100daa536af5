package rustdocindex

import (
	"fmt"
	"sort"

	"github.com/mgr0dzicki/rustdoc-index/rustdoc"
)

// forestBuilder carries the state of the reachability DFS that runs once
// inside New.
type forestBuilder struct {
	crate          *rustdoc.Crate
	implWorkaround bool

	// parents accumulates the forest: id to set of reachability parents. An
	// entry is created the moment an item passes the visibility filter, so
	// presence doubles as the reachability marker.
	parents map[rustdoc.Id]map[rustdoc.Id]struct{}

	// active holds the ids on the current DFS path. Revisiting an active id
	// means the re-export graph has a cycle; the walk stops there and the id
	// is dropped again on unwind.
	active map[rustdoc.Id]struct{}
}

// buildVisibilityForest walks the snapshot from the root and records, for
// every publicly reachable item, the parents it is reachable through. A root
// that is missing or not public yields an empty forest.
func buildVisibilityForest(c *rustdoc.Crate, implWorkaround bool) map[rustdoc.Id][]rustdoc.Id {
	b := &forestBuilder{
		crate:          c,
		implWorkaround: implWorkaround,
		parents:        make(map[rustdoc.Id]map[rustdoc.Id]struct{}),
		active:         make(map[rustdoc.Id]struct{}),
	}
	if root, ok := c.Index[c.Root]; ok && root.Visibility == rustdoc.VisibilityPublic {
		b.visit(root, nil)
	}

	forest := make(map[rustdoc.Id][]rustdoc.Id, len(b.parents))
	for id, set := range b.parents {
		list := make([]rustdoc.Id, 0, len(set))
		for parent := range set {
			list = append(list, parent)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		forest[id] = list
	}
	return forest
}

// visitID resolves a child id and continues the walk. Ids missing from the
// index are skipped: snapshots reference stripped and foreign items freely.
func (b *forestBuilder) visitID(id rustdoc.Id, parent *rustdoc.Id) {
	if item, ok := b.crate.Index[id]; ok {
		b.visit(item, parent)
	}
}

func (b *forestBuilder) visit(item *rustdoc.Item, parent *rustdoc.Id) {
	switch item.Visibility {
	case rustdoc.VisibilityCrate:
		// Toolchains predating the impl visibility fix tag public impl
		// blocks as crate-visible, a spelling the language itself does not
		// allow. Keep walking through impls when the workaround is on;
		// everything else crate-visible is genuinely not public.
		if !(b.implWorkaround && item.Inner.Impl != nil) {
			return
		}
	case rustdoc.VisibilityRestricted:
		return
	}

	// Record before the cycle check so an already-visited item still
	// accumulates the new edge: diamond re-export graphs reach the same
	// item through several parents.
	set, ok := b.parents[item.ID]
	if !ok {
		set = make(map[rustdoc.Id]struct{})
		b.parents[item.ID] = set
	}
	if parent != nil {
		set[*parent] = struct{}{}
	}

	if _, seen := b.active[item.ID]; seen {
		return
	}
	b.active[item.ID] = struct{}{}
	defer delete(b.active, item.ID)

	switch {
	case item.Inner.Module != nil:
		for _, child := range item.Inner.Module.Items {
			b.visitID(child, &item.ID)
		}

	case item.Inner.Import != nil:
		imp := item.Inner.Import
		if imp.ID == nil {
			return
		}
		target, ok := b.crate.Index[*imp.ID]
		if !ok {
			return
		}
		if !imp.Glob {
			// The import itself joins the parent chain so that path
			// reconstruction can substitute its (possibly renaming) name
			// for the target's own.
			b.visit(target, &item.ID)
			return
		}
		// A glob exposes the target's contents directly in the importing
		// scope: the contents inherit the import's own parent and the glob
		// never becomes a path segment.
		switch {
		case target.Inner.Module != nil:
			for _, child := range target.Inner.Module.Items {
				b.visitID(child, parent)
			}
		case target.Inner.Enum != nil:
			for _, variant := range target.Inner.Enum.Variants {
				b.visitID(variant, parent)
			}
		default:
			panic(fmt.Sprintf("rustdocindex: glob import %s targets a %s, want module or enum",
				item.ID, target.Inner.Kind()))
		}

	case item.Inner.Struct != nil:
		s := item.Inner.Struct
		switch s.Kind {
		case rustdoc.StructKindUnit:
		case rustdoc.StructKindTuple:
			for _, field := range s.TupleFields {
				if field != nil {
					b.visitID(*field, &item.ID)
				}
			}
		default:
			for _, field := range s.Fields {
				b.visitID(field, &item.ID)
			}
		}
		for _, impl := range s.Impls {
			b.visitID(impl, &item.ID)
		}

	case item.Inner.Enum != nil:
		for _, variant := range item.Inner.Enum.Variants {
			b.visitID(variant, &item.ID)
		}
		for _, impl := range item.Inner.Enum.Impls {
			b.visitID(impl, &item.ID)
		}

	case item.Inner.Union != nil:
		for _, field := range item.Inner.Union.Fields {
			b.visitID(field, &item.ID)
		}
		for _, impl := range item.Inner.Union.Impls {
			b.visitID(impl, &item.ID)
		}

	case item.Inner.Trait != nil:
		for _, child := range item.Inner.Trait.Items {
			b.visitID(child, &item.ID)
		}

	case item.Inner.Impl != nil:
		for _, child := range item.Inner.Impl.Items {
			b.visitID(child, &item.ID)
		}

	case item.Inner.Typedef != nil:
		// A type alias participates in reachability only when it is
		// indistinguishable from a re-export of its target.
		if target := equivalentReexportTarget(b.crate, item.Inner.Typedef); target != nil {
			b.visit(target, &item.ID)
		}
	}
}
