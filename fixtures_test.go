package rustdocindex

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgr0dzicki/rustdoc-index/rustdoc"
)

// testFormatVersion is a snapshot revision new enough that the crate-visible
// impl workaround stays off unless a test forces it.
const testFormatVersion = 26

// testCrate assembles an in-memory snapshot item by item. Ids are arbitrary
// strings, so scenarios use readable ones like "inner" or "use-foo".
type testCrate struct {
	t     *testing.T
	crate *rustdoc.Crate
}

// newTestCrate starts a snapshot whose root module is a public crate root
// named name. Top-level items are attached later with rootItems.
func newTestCrate(t *testing.T, name string) *testCrate {
	t.Helper()
	f := &testCrate{
		t: t,
		crate: &rustdoc.Crate{
			Root:           "0:0",
			FormatVersion:  testFormatVersion,
			Index:          map[rustdoc.Id]*rustdoc.Item{},
			Paths:          map[rustdoc.Id]rustdoc.ItemSummary{},
			ExternalCrates: map[uint32]rustdoc.ExternalCrate{},
		},
	}
	f.add("0:0", name, rustdoc.VisibilityPublic, rustdoc.ItemEnum{Module: &rustdoc.Module{IsCrate: true}})
	return f
}

func (f *testCrate) add(id rustdoc.Id, name string, vis rustdoc.Visibility, inner rustdoc.ItemEnum) rustdoc.Id {
	f.t.Helper()
	if _, ok := f.crate.Index[id]; ok {
		f.t.Fatalf("fixture id %q used twice", id)
	}
	item := &rustdoc.Item{ID: id, Visibility: vis, Inner: inner}
	if name != "" {
		item.Name = &name
	}
	f.crate.Index[id] = item
	return id
}

// rootItems appends ids to the root module's item list.
func (f *testCrate) rootItems(ids ...rustdoc.Id) {
	f.t.Helper()
	root := f.crate.Index[f.crate.Root]
	require.NotNil(f.t, root.Inner.Module)
	root.Inner.Module.Items = append(root.Inner.Module.Items, ids...)
}

func (f *testCrate) module(id rustdoc.Id, name string, vis rustdoc.Visibility, items ...rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Module: &rustdoc.Module{Items: items}})
}

func (f *testCrate) fn(id rustdoc.Id, name string, vis rustdoc.Visibility) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Function: &rustdoc.Function{HasBody: true}})
}

func (f *testCrate) unitStruct(id rustdoc.Id, name string, vis rustdoc.Visibility) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Struct: &rustdoc.Struct{Kind: rustdoc.StructKindUnit}})
}

func (f *testCrate) structWith(id rustdoc.Id, name string, vis rustdoc.Visibility, fields, impls []rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Struct: &rustdoc.Struct{
		Kind:   rustdoc.StructKindPlain,
		Fields: fields,
		Impls:  impls,
	}})
}

func (f *testCrate) enumWith(id rustdoc.Id, name string, vis rustdoc.Visibility, variants, impls []rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Enum: &rustdoc.Enum{
		Variants: variants,
		Impls:    impls,
	}})
}

func (f *testCrate) unionWith(id rustdoc.Id, name string, vis rustdoc.Visibility, fields, impls []rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Union: &rustdoc.Union{
		Fields: fields,
		Impls:  impls,
	}})
}

func (f *testCrate) variant(id rustdoc.Id, name string) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, rustdoc.VisibilityDefault, rustdoc.ItemEnum{Variant: &rustdoc.Variant{Kind: rustdoc.VariantKindPlain}})
}

func (f *testCrate) field(id rustdoc.Id, name string, vis rustdoc.Visibility) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{StructField: &rustdoc.StructField{
		Type: rustdoc.Type{Primitive: strPtr("i64")},
	}})
}

// use adds a non-glob import binding name to target, the shape `pub use
// path as name` takes in a snapshot.
func (f *testCrate) use(id rustdoc.Id, name string, target rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, rustdoc.VisibilityPublic, rustdoc.ItemEnum{Import: &rustdoc.Import{
		Source: string(target),
		Name:   name,
		ID:     &target,
	}})
}

// globUse adds a `pub use target::*` import.
func (f *testCrate) globUse(id rustdoc.Id, target rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, string(target), rustdoc.VisibilityPublic, rustdoc.ItemEnum{Import: &rustdoc.Import{
		Source: string(target),
		Name:   string(target),
		ID:     &target,
		Glob:   true,
	}})
}

// inherentImpl adds an impl block without a trait. Impl blocks carry default
// visibility and no name.
func (f *testCrate) inherentImpl(id rustdoc.Id, owner rustdoc.Id, items ...rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, "", rustdoc.VisibilityDefault, rustdoc.ItemEnum{Impl: &rustdoc.Impl{
		For:   rustdoc.Type{ResolvedPath: &rustdoc.Path{Name: string(owner), ID: owner}},
		Items: items,
	}})
}

// traitImpl adds an impl block for the named trait. provided lists the
// trait's default-bodied methods the block does not override.
func (f *testCrate) traitImpl(id rustdoc.Id, owner rustdoc.Id, trait rustdoc.Path, provided []string, items ...rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, "", rustdoc.VisibilityDefault, rustdoc.ItemEnum{Impl: &rustdoc.Impl{
		Trait:                &trait,
		For:                  rustdoc.Type{ResolvedPath: &rustdoc.Path{Name: string(owner), ID: owner}},
		ProvidedTraitMethods: provided,
		Items:                items,
	}})
}

func (f *testCrate) traitWith(id rustdoc.Id, name string, vis rustdoc.Visibility, items ...rustdoc.Id) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Trait: &rustdoc.Trait{Items: items}})
}

// typedef adds a type alias `type name<params> = target`.
func (f *testCrate) typedef(id rustdoc.Id, name string, vis rustdoc.Visibility, target rustdoc.Type, params ...rustdoc.GenericParamDef) rustdoc.Id {
	f.t.Helper()
	return f.add(id, name, vis, rustdoc.ItemEnum{Typedef: &rustdoc.Typedef{
		Type:     target,
		Generics: rustdoc.Generics{Params: params},
	}})
}

// Type and generic-argument constructors, free of *testing.T so typedef
// scenarios stay readable.

func strPtr(s string) *string { return &s }

func pathType(name string, id rustdoc.Id, args *rustdoc.GenericArgs) rustdoc.Type {
	return rustdoc.Type{ResolvedPath: &rustdoc.Path{Name: name, ID: id, Args: args}}
}

func angleArgs(args ...rustdoc.GenericArg) *rustdoc.GenericArgs {
	return &rustdoc.GenericArgs{AngleBracketed: &rustdoc.AngleBracketedArgs{Args: args}}
}

func lifetimeArg(name string) rustdoc.GenericArg {
	return rustdoc.GenericArg{Lifetime: &name}
}

func typeArg(t rustdoc.Type) rustdoc.GenericArg {
	return rustdoc.GenericArg{Type: &t}
}

func constArg(expr string) rustdoc.GenericArg {
	return rustdoc.GenericArg{Const: &rustdoc.ConstArg{Expr: expr}}
}

func genericType(name string) rustdoc.Type {
	return rustdoc.Type{Generic: &name}
}

func primitiveType(name string) rustdoc.Type {
	return rustdoc.Type{Primitive: &name}
}

func lifetimeParam(name string) rustdoc.GenericParamDef {
	return rustdoc.GenericParamDef{Name: name, Kind: rustdoc.GenericParamDefKind{Lifetime: &rustdoc.LifetimeParam{}}}
}

func typeParam(name string, def *rustdoc.Type) rustdoc.GenericParamDef {
	return rustdoc.GenericParamDef{Name: name, Kind: rustdoc.GenericParamDefKind{Type: &rustdoc.TypeParam{Default: def}}}
}

func constParam(name, typ string, def *string) rustdoc.GenericParamDef {
	return rustdoc.GenericParamDef{Name: name, Kind: rustdoc.GenericParamDefKind{Const: &rustdoc.ConstParam{
		Type:    rustdoc.Type{Primitive: &typ},
		Default: def,
	}}}
}

// importablePathStrings enumerates id's paths as `::`-joined strings, in
// sorted order. Enumerating twice must give the same answer and a single
// enumeration must be duplicate-free.
func importablePathStrings(t *testing.T, x *IndexedCrate, id rustdoc.Id) []string {
	t.Helper()
	paths := x.ImportablePaths(id)
	require.Equal(t, paths, x.ImportablePaths(id))

	out := make([]string, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		s := p.String()
		require.False(t, seen[s], "importable path %q enumerated twice", s)
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// assertPaths checks id's importable paths against want, order-insensitively.
func assertPaths(t *testing.T, x *IndexedCrate, id rustdoc.Id, want ...string) {
	t.Helper()
	sorted := make([]string, len(want))
	copy(sorted, want)
	sort.Strings(sorted)
	assert.Equal(t, sorted, importablePathStrings(t, x, id))
}
