// Package rustdocindex resolves the public API surface of a rustdoc
// snapshot: which items are publicly reachable, every path an external crate
// can import them under, and uniform member lookup across impl blocks. It is
// the name-resolution core of a semver compatibility checker; parsing
// snapshots and judging changes belong to the layers around it.
//
// # Construction
//
// [New] takes a fully parsed [rustdoc.Crate] and derives four read-only
// structures in one pass:
//
//  1. The visibility forest: for every item reachable from the crate root
//     through public visibility and re-exports, the set of parents it is
//     reachable through. Diamond-shaped re-export graphs give an item
//     several parents.
//
//  2. The import index: every importable path of every struct, field, enum,
//     variant, function, impl, and trait, keyed by `::`-joined path.
//
//  3. The impl member index: (owner type, member name) to the impl blocks
//     providing that member, whether declared in the block or inherited as a
//     provided trait method.
//
//  4. Synthesized builtin traits: placeholder items for well-known foreign
//     traits (Debug, Clone, Send, ...) that impls reference but snapshots
//     never contain, merged into [IndexedCrate.Item] lookups behind the
//     primary index.
//
// Construction never fails. Missing referents, nameless items, and dangling
// imports quietly contribute nothing; only malformed-snapshot invariant
// violations panic.
//
// # Reachability and paths
//
// Type aliases count as re-exports when they are indistinguishable from one:
// `type Foo<T> = Bar<T>` re-exports Bar, while reordering, constraining, or
// re-defaulting parameters makes a distinct type. Glob imports expose the
// target's contents without becoming a path segment; renaming imports
// substitute their binding name. Cyclic re-export graphs are walked with
// path-local cycle guards and always terminate.
//
// # Usage
//
//	var crate rustdoc.Crate
//	// ... decode or build the snapshot ...
//
//	x := rustdocindex.New(&crate)
//	for _, path := range x.ImportablePaths(id) {
//		fmt.Println(path) // e.g. "mycrate::inner::Foo"
//	}
//	members := x.ImplMembers(ownerID, "clone")
//
// An [IndexedCrate] is immutable after New and safe for concurrent readers.
package rustdocindex
