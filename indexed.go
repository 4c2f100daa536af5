package rustdocindex

import (
	"sort"

	"github.com/mgr0dzicki/rustdoc-index/rustdoc"
)

// implVisibilityFixedFormat is the first snapshot format revision whose
// producer tags public impl blocks correctly. Older toolchains emitted
// crate-level visibility for impl blocks that are in fact public, a tagging
// the language itself cannot express.
const implVisibilityFixedFormat = 25

// IndexedCrate wraps one snapshot together with the derived structures that
// public-API queries need: the visibility forest, the import-path index, the
// impl member index, and the synthesized builtin traits.
//
// All derived state is built once in New and never mutated afterward, so an
// IndexedCrate is safe for concurrent readers.
type IndexedCrate struct {
	crate *rustdoc.Crate

	// visibilityForest maps each publicly reachable id to its reachability
	// parents, sorted by id. Presence of an entry is the reachability test;
	// the root's entry is empty.
	visibilityForest map[rustdoc.Id][]rustdoc.Id

	// importsIndex groups items by `::`-joined importable path. Distinct
	// items may share one path: the type and value namespaces can each hold
	// an item of the same name.
	importsIndex map[string][]*rustdoc.Item

	// implsIndex maps (owner id, member name) to every impl block providing
	// that member, explicitly or through an inherited trait default.
	implsIndex map[ImplEntry][]ImplMember

	// builtinTraits holds synthesized placeholder items for well-known
	// foreign traits, keyed by the id impls reference them under.
	builtinTraits map[rustdoc.Id]*rustdoc.Item

	implWorkaround bool
}

// ImplEntry keys the impl member index: the id of the struct, enum, or union
// owning the impl blocks, and the member name inside them.
type ImplEntry struct {
	Owner rustdoc.Id
	Name  string
}

// ImplMember is one provider of a member name on an owner type. For a member
// declared in the block, Member is that item; for an inherited provided
// method, Member is the trait's default item and Impl is the block that
// inherited it.
type ImplMember struct {
	Impl   *rustdoc.Item
	Member *rustdoc.Item
}

// Option configures an IndexedCrate.
type Option func(*IndexedCrate)

// WithImplVisibilityWorkaround forces the crate-visible impl workaround on
// or off, overriding the format-version gate. Snapshots from toolchains
// predating the fix tag public impl blocks as crate-visible; the workaround
// keeps those impls and their members publicly reachable.
func WithImplVisibilityWorkaround(enabled bool) Option {
	return func(x *IndexedCrate) { x.implWorkaround = enabled }
}

// New indexes a snapshot. Construction never fails: absences of any kind
// produce empty results rather than errors.
func New(c *rustdoc.Crate, opts ...Option) *IndexedCrate {
	x := &IndexedCrate{
		crate:          c,
		implWorkaround: c.FormatVersion < implVisibilityFixedFormat,
	}
	for _, opt := range opts {
		opt(x)
	}

	x.builtinTraits = synthesizeBuiltinTraits(c)
	x.visibilityForest = buildVisibilityForest(c, x.implWorkaround)

	// Index construction iterates ids in sorted order so the item lists in
	// both indexes come out deterministic for a given snapshot.
	ids := sortedIndexIds(c)
	x.importsIndex = buildImportsIndex(x, ids)
	x.implsIndex = buildImplsIndex(x, ids)
	return x
}

// Crate returns the underlying snapshot.
func (x *IndexedCrate) Crate() *rustdoc.Crate {
	return x.crate
}

// Item returns the item for id, consulting the snapshot index first and the
// synthesized builtin traits second. Nil when neither knows the id.
func (x *IndexedCrate) Item(id rustdoc.Id) *rustdoc.Item {
	if item, ok := x.crate.Index[id]; ok {
		return item
	}
	if item, ok := x.builtinTraits[id]; ok {
		return item
	}
	return nil
}

// PubliclyReachable reports whether a chain of public visibility and
// re-exports connects id to the crate root.
func (x *IndexedCrate) PubliclyReachable(id rustdoc.Id) bool {
	_, ok := x.visibilityForest[id]
	return ok
}

// VisibleParents returns id's reachability parents in sorted id order, empty
// when the id is not publicly reachable. The root is reachable with no
// parents. Callers must not mutate the returned slice.
func (x *IndexedCrate) VisibleParents(id rustdoc.Id) []rustdoc.Id {
	return x.visibilityForest[id]
}

// ItemsAtPath returns every item importable under the exact root-first path,
// for example ItemsAtPath("mycrate", "inner", "Foo"). Callers must not
// mutate the returned slice.
func (x *IndexedCrate) ItemsAtPath(path ...string) []*rustdoc.Item {
	return x.importsIndex[ImportablePath(path).String()]
}

// ImplMembers returns every impl block providing the named member on the
// owner type, whether declared in the block or inherited as a provided trait
// method. Callers must not mutate the returned slice.
func (x *IndexedCrate) ImplMembers(owner rustdoc.Id, name string) []ImplMember {
	return x.implsIndex[ImplEntry{Owner: owner, Name: name}]
}

// sortedIndexIds returns the snapshot's item ids in sorted order.
func sortedIndexIds(c *rustdoc.Crate) []rustdoc.Id {
	ids := make([]rustdoc.Id, 0, len(c.Index))
	for id := range c.Index {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
