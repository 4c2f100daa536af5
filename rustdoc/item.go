package rustdoc

import (
	"encoding/json"
	"fmt"
)

// Item is one node of the snapshot graph: an entity the crate declares,
// described by an optional name, a visibility tag, and a kind-specific
// payload in Inner.
type Item struct {
	ID      Id     `json:"id"`
	CrateID uint32 `json:"crate_id"`

	// Name is nil for items that have none, such as impl blocks.
	Name *string `json:"name,omitempty"`

	Span        *Span         `json:"span,omitempty"`
	Visibility  Visibility    `json:"visibility,omitempty"`
	Docs        *string       `json:"docs,omitempty"`
	Links       map[string]Id `json:"links,omitempty"`
	Attrs       []string      `json:"attrs,omitempty"`
	Deprecation *Deprecation  `json:"deprecation,omitempty"`

	Inner ItemEnum `json:"inner"`
}

// Span is the source location of an item.
type Span struct {
	Filename string `json:"filename"`
	Begin    [2]int `json:"begin"`
	End      [2]int `json:"end"`
}

// Deprecation carries a #[deprecated] attribute's contents.
type Deprecation struct {
	Since *string `json:"since,omitempty"`
	Note  *string `json:"note,omitempty"`
}

// Visibility is the declared visibility of an item. The zero value reads as
// VisibilityDefault: visible exactly when the surrounding item is.
//
// The external schema encodes public, default, and crate visibility as bare
// strings, and restricted visibility as an object naming the restricting
// module. Only the tag matters here, so the object form collapses to
// VisibilityRestricted on decode.
type Visibility string

const (
	VisibilityPublic     Visibility = "public"
	VisibilityDefault    Visibility = "default"
	VisibilityCrate      Visibility = "crate"
	VisibilityRestricted Visibility = "restricted"
)

func (v *Visibility) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Visibility(s)
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("rustdoc: visibility: %w", err)
	}
	if _, ok := obj["restricted"]; ok {
		*v = VisibilityRestricted
		return nil
	}
	return fmt.Errorf("rustdoc: visibility: unrecognized form %s", data)
}

func (v Visibility) MarshalJSON() ([]byte, error) {
	if v == VisibilityRestricted {
		return []byte(`{"restricted":{}}`), nil
	}
	return json.Marshal(string(v))
}

// ItemKind names the payload an item carries. The same names appear in
// ItemSummary entries. The empty string marks a payload this schema revision
// does not model; such items are traversal leaves.
type ItemKind string

const (
	KindModule      ItemKind = "module"
	KindExternCrate ItemKind = "extern_crate"
	KindImport      ItemKind = "import"
	KindUnion       ItemKind = "union"
	KindStruct      ItemKind = "struct"
	KindStructField ItemKind = "struct_field"
	KindEnum        ItemKind = "enum"
	KindVariant     ItemKind = "variant"
	KindFunction    ItemKind = "function"
	KindTrait       ItemKind = "trait"
	KindTraitAlias  ItemKind = "trait_alias"
	KindImpl        ItemKind = "impl"
	KindTypedef     ItemKind = "typedef"
	KindConstant    ItemKind = "constant"
	KindStatic      ItemKind = "static"
	KindAssocConst  ItemKind = "assoc_const"
	KindAssocType   ItemKind = "assoc_type"
	KindMacro       ItemKind = "macro"
	KindUnknown     ItemKind = ""
)

// ItemEnum is the kind-tagged payload of an Item: at most one field is
// non-nil. The zero value stands for any kind this schema revision does not
// model.
type ItemEnum struct {
	Module      *Module      `json:"module,omitempty"`
	ExternCrate *ExternCrate `json:"extern_crate,omitempty"`
	Import      *Import      `json:"import,omitempty"`
	Union       *Union       `json:"union,omitempty"`
	Struct      *Struct      `json:"struct,omitempty"`
	StructField *StructField `json:"struct_field,omitempty"`
	Enum        *Enum        `json:"enum,omitempty"`
	Variant     *Variant     `json:"variant,omitempty"`
	Function    *Function    `json:"function,omitempty"`
	Trait       *Trait       `json:"trait,omitempty"`
	TraitAlias  *TraitAlias  `json:"trait_alias,omitempty"`
	Impl        *Impl        `json:"impl,omitempty"`
	Typedef     *Typedef     `json:"typedef,omitempty"`
	Constant    *Constant    `json:"constant,omitempty"`
	Static      *Static      `json:"static,omitempty"`
	AssocConst  *AssocConst  `json:"assoc_const,omitempty"`
	AssocType   *AssocType   `json:"assoc_type,omitempty"`
	Macro       *string      `json:"macro,omitempty"`
}

// Kind derives the tag from whichever payload field is set.
func (e *ItemEnum) Kind() ItemKind {
	switch {
	case e.Module != nil:
		return KindModule
	case e.ExternCrate != nil:
		return KindExternCrate
	case e.Import != nil:
		return KindImport
	case e.Union != nil:
		return KindUnion
	case e.Struct != nil:
		return KindStruct
	case e.StructField != nil:
		return KindStructField
	case e.Enum != nil:
		return KindEnum
	case e.Variant != nil:
		return KindVariant
	case e.Function != nil:
		return KindFunction
	case e.Trait != nil:
		return KindTrait
	case e.TraitAlias != nil:
		return KindTraitAlias
	case e.Impl != nil:
		return KindImpl
	case e.Typedef != nil:
		return KindTypedef
	case e.Constant != nil:
		return KindConstant
	case e.Static != nil:
		return KindStatic
	case e.AssocConst != nil:
		return KindAssocConst
	case e.AssocType != nil:
		return KindAssocType
	case e.Macro != nil:
		return KindMacro
	default:
		return KindUnknown
	}
}

// Module groups items. The crate root is a module with IsCrate set.
type Module struct {
	IsCrate    bool `json:"is_crate,omitempty"`
	Items      []Id `json:"items,omitempty"`
	IsStripped bool `json:"is_stripped,omitempty"`
}

// ExternCrate is an `extern crate` declaration. The similarly named
// ExternalCrate describes a whole foreign crate instead.
type ExternCrate struct {
	Name   string  `json:"name"`
	Rename *string `json:"rename,omitempty"`
}

// Import is a `use` declaration.
type Import struct {
	// Source is the full path as written in the declaration.
	Source string `json:"source"`
	// Name is the binding name in the importing scope. For a renaming import
	// it differs from the target's own name.
	Name string `json:"name"`
	// ID is the target item, when the target resolves within this snapshot.
	ID *Id `json:"id,omitempty"`
	// Glob marks a `use path::*` import: the target's contents are imported
	// rather than the target itself.
	Glob bool `json:"glob,omitempty"`
}

// StructKind distinguishes the three field layouts a struct can have.
type StructKind string

const (
	StructKindPlain StructKind = "plain"
	StructKindTuple StructKind = "tuple"
	StructKindUnit  StructKind = "unit"
)

type Struct struct {
	Kind StructKind `json:"kind"`
	// Fields holds the field ids of a plain struct.
	Fields []Id `json:"fields,omitempty"`
	// TupleFields holds one entry per tuple position; nil marks a position
	// stripped from the documentation.
	TupleFields    []*Id    `json:"tuple_fields,omitempty"`
	FieldsStripped bool     `json:"fields_stripped,omitempty"`
	Generics       Generics `json:"generics"`
	Impls          []Id     `json:"impls,omitempty"`
}

// StructField's payload is the field's type.
type StructField struct {
	Type Type `json:"type"`
}

type Enum struct {
	Generics         Generics `json:"generics"`
	Variants         []Id     `json:"variants,omitempty"`
	VariantsStripped bool     `json:"variants_stripped,omitempty"`
	Impls            []Id     `json:"impls,omitempty"`
}

// VariantKind distinguishes plain, tuple, and struct enum variants.
type VariantKind string

const (
	VariantKindPlain  VariantKind = "plain"
	VariantKindTuple  VariantKind = "tuple"
	VariantKindStruct VariantKind = "struct"
)

type Variant struct {
	Kind VariantKind `json:"kind"`
	// Fields holds field ids for tuple and struct variants; nil entries mark
	// stripped tuple positions.
	Fields         []*Id         `json:"fields,omitempty"`
	FieldsStripped bool          `json:"fields_stripped,omitempty"`
	Discriminant   *Discriminant `json:"discriminant,omitempty"`
}

// Discriminant is an explicit enum discriminant. Expr is the source text;
// Value is the computed value when the producer evaluated it.
type Discriminant struct {
	Expr  string `json:"expr"`
	Value string `json:"value,omitempty"`
}

type Union struct {
	Generics       Generics `json:"generics"`
	FieldsStripped bool     `json:"fields_stripped,omitempty"`
	Fields         []Id     `json:"fields,omitempty"`
	Impls          []Id     `json:"impls,omitempty"`
}

type Function struct {
	Decl     FnDecl   `json:"decl"`
	Generics Generics `json:"generics"`
	Header   FnHeader `json:"header"`
	HasBody  bool     `json:"has_body,omitempty"`
}

type FnDecl struct {
	Inputs    []FnInput `json:"inputs,omitempty"`
	Output    *Type     `json:"output,omitempty"`
	CVariadic bool      `json:"c_variadic,omitempty"`
}

type FnInput struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

type FnHeader struct {
	IsConst  bool   `json:"is_const,omitempty"`
	IsUnsafe bool   `json:"is_unsafe,omitempty"`
	IsAsync  bool   `json:"is_async,omitempty"`
	ABI      string `json:"abi,omitempty"`
}

type Trait struct {
	IsAuto          bool           `json:"is_auto,omitempty"`
	IsUnsafe        bool           `json:"is_unsafe,omitempty"`
	Items           []Id           `json:"items,omitempty"`
	Generics        Generics       `json:"generics"`
	Bounds          []GenericBound `json:"bounds,omitempty"`
	Implementations []Id           `json:"implementations,omitempty"`
}

type TraitAlias struct {
	Generics Generics       `json:"generics"`
	Params   []GenericBound `json:"params,omitempty"`
}

type Impl struct {
	IsUnsafe bool     `json:"is_unsafe,omitempty"`
	Generics Generics `json:"generics"`
	// ProvidedTraitMethods names the implemented trait's default-bodied
	// methods this block does not override.
	ProvidedTraitMethods []string `json:"provided_trait_methods,omitempty"`
	// Trait is the implemented trait for trait impls, nil for inherent ones.
	Trait *Path `json:"trait,omitempty"`
	// For is the implementing type.
	For         Type  `json:"for"`
	Items       []Id  `json:"items,omitempty"`
	Negative    bool  `json:"negative,omitempty"`
	Synthetic   bool  `json:"synthetic,omitempty"`
	BlanketImpl *Type `json:"blanket_impl,omitempty"`
}

// Typedef is a type alias declaration: `type Name<...> = Type`.
type Typedef struct {
	Type     Type     `json:"type"`
	Generics Generics `json:"generics"`
}

type Constant struct {
	Type      Type    `json:"type"`
	Expr      string  `json:"expr"`
	Value     *string `json:"value,omitempty"`
	IsLiteral bool    `json:"is_literal,omitempty"`
}

type Static struct {
	Type    Type   `json:"type"`
	Mutable bool   `json:"mutable,omitempty"`
	Expr    string `json:"expr,omitempty"`
}

type AssocConst struct {
	Type    Type    `json:"type"`
	Default *string `json:"default,omitempty"`
}

type AssocType struct {
	Bounds  []GenericBound `json:"bounds,omitempty"`
	Default *Type          `json:"default,omitempty"`
}
