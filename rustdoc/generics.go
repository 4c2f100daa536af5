package rustdoc

import "encoding/json"

// Generics is the generic parameter list of a declaration. Where predicates
// are tolerated but never interpreted: the compiler ignores where bounds in
// the positions this model cares about, so they stay raw.
type Generics struct {
	Params          []GenericParamDef `json:"params,omitempty"`
	WherePredicates json.RawMessage   `json:"where_predicates,omitempty"`
}

// GenericParamDef is one declared generic parameter.
type GenericParamDef struct {
	Name string              `json:"name"`
	Kind GenericParamDefKind `json:"kind"`
}

// GenericParamDefKind is a closed variant: exactly one field is non-nil.
type GenericParamDefKind struct {
	Lifetime *LifetimeParam `json:"lifetime,omitempty"`
	Type     *TypeParam     `json:"type,omitempty"`
	Const    *ConstParam    `json:"const,omitempty"`
}

type LifetimeParam struct {
	Outlives []string `json:"outlives,omitempty"`
}

type TypeParam struct {
	Bounds    []GenericBound `json:"bounds,omitempty"`
	Default   *Type          `json:"default,omitempty"`
	Synthetic bool           `json:"synthetic,omitempty"`
}

type ConstParam struct {
	Type    Type    `json:"type"`
	Default *string `json:"default,omitempty"`
}

// GenericBound is one bound on a generic parameter or associated type.
type GenericBound struct {
	TraitBound *TraitBound `json:"trait_bound,omitempty"`
	Outlives   *string     `json:"outlives,omitempty"`
}

type TraitBound struct {
	Trait    Path   `json:"trait"`
	Modifier string `json:"modifier,omitempty"`
}

// Type is a type reference, a closed variant over the shapes the index
// distinguishes: at most one field is set. The zero value stands for any
// shape this schema revision does not model.
type Type struct {
	// ResolvedPath is a reference to a named item, possibly with generic
	// arguments.
	ResolvedPath *Path `json:"resolved_path,omitempty"`
	// Generic is a bare generic parameter in type position, by name.
	Generic     *string      `json:"generic,omitempty"`
	Primitive   *string      `json:"primitive,omitempty"`
	Tuple       []Type       `json:"tuple,omitempty"`
	Slice       *Type        `json:"slice,omitempty"`
	BorrowedRef *BorrowedRef `json:"borrowed_ref,omitempty"`
}

type BorrowedRef struct {
	Lifetime *string `json:"lifetime,omitempty"`
	Mutable  bool    `json:"mutable,omitempty"`
	Type     Type    `json:"type"`
}

// Path is a reference to a named item by id.
type Path struct {
	// Name is the unqualified name as written at the reference site.
	Name string       `json:"name"`
	ID   Id           `json:"id"`
	Args *GenericArgs `json:"args,omitempty"`
}

// GenericArgs is a closed variant: angle-bracketed `<...>` arguments or
// parenthesized `(...)` sugar.
type GenericArgs struct {
	AngleBracketed *AngleBracketedArgs `json:"angle_bracketed,omitempty"`
	Parenthesized  *ParenthesizedArgs  `json:"parenthesized,omitempty"`
}

type AngleBracketedArgs struct {
	Args []GenericArg `json:"args,omitempty"`
	// Bindings are associated-item constraints such as `Item = u32`.
	Bindings []TypeBinding `json:"bindings,omitempty"`
}

type ParenthesizedArgs struct {
	Inputs []Type `json:"inputs,omitempty"`
	Output *Type  `json:"output,omitempty"`
}

// GenericArg is one angle-bracketed argument: a lifetime, a type, a const
// expression, or an inferred `_`.
type GenericArg struct {
	Lifetime *string   `json:"lifetime,omitempty"`
	Type     *Type     `json:"type,omitempty"`
	Const    *ConstArg `json:"const,omitempty"`
	Infer    bool      `json:"infer,omitempty"`
}

// ConstArg carries the textual form of a const generic argument. Expressions
// are never evaluated; comparisons are textual.
type ConstArg struct {
	Expr  string  `json:"expr"`
	Value *string `json:"value,omitempty"`
}

// TypeBinding is an associated-item constraint inside angle-bracketed args.
type TypeBinding struct {
	Name    string          `json:"name"`
	Args    *GenericArgs    `json:"args,omitempty"`
	Binding json.RawMessage `json:"binding,omitempty"`
}
