// Package rustdoc defines the snapshot model: the fully parsed documentation
// graph rustdoc emits for one crate version. A snapshot carries every item
// the tool saw (modules, types, traits, impl blocks, functions, fields)
// keyed by opaque id, plus summary entries for items that live in other
// crates but are referenced from this one.
//
// The package mirrors the external JSON schema (format v24 era) in Go-native
// form. Field tags exist so snapshots produced out-of-process decode
// directly; this package never reads files itself.
package rustdoc

// Id is an opaque stable identifier for one item within a snapshot. Ids are
// comparable and hashable; their text carries no meaning.
type Id string

// Crate is one complete documentation snapshot.
type Crate struct {
	// Root is the id of the crate's root module.
	Root Id `json:"root"`

	CrateVersion    string `json:"crate_version,omitempty"`
	IncludesPrivate bool   `json:"includes_private,omitempty"`

	// Index holds every item the snapshot contains, keyed by id.
	Index map[Id]*Item `json:"index"`

	// Paths summarizes items by crate and path, including items of foreign
	// crates that are referenced but not contained here.
	Paths map[Id]ItemSummary `json:"paths,omitempty"`

	ExternalCrates map[uint32]ExternalCrate `json:"external_crates,omitempty"`

	// FormatVersion identifies the schema revision of the producing
	// toolchain. Zero means the producer predates the field.
	FormatVersion uint32 `json:"format_version"`
}

// ItemSummary locates an item without carrying its body.
type ItemSummary struct {
	// CrateID identifies the owning crate; zero is the local crate.
	CrateID uint32   `json:"crate_id"`
	Path    []string `json:"path"`
	Kind    ItemKind `json:"kind"`
}

// ExternalCrate describes a foreign crate the snapshot references.
type ExternalCrate struct {
	Name        string  `json:"name"`
	HTMLRootURL *string `json:"html_root_url,omitempty"`
}
