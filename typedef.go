package rustdocindex

import (
	"fmt"
	"reflect"

	"github.com/mgr0dzicki/rustdoc-index/rustdoc"
)

// equivalentReexportTarget returns the item a type alias points at when the
// alias is indistinguishable from a re-export of it, nil otherwise.
//
// `type Foo = Bar` is equivalent to `pub use Bar as Foo`. With generics,
// `type Foo<A, B> = Bar<A, B>` still is, provided every parameter is passed
// through unchanged: same count, same order, same kinds, same defaults.
// Reordered parameters (`type Foo<A, B> = Bar<B, A>`), concrete arguments,
// added or changed defaults, and associated-item bindings all make the alias
// a distinct type. Where predicates are ignored, as the compiler ignores
// them on aliases.
func equivalentReexportTarget(c *rustdoc.Crate, td *rustdoc.Typedef) *rustdoc.Item {
	path := td.Type.ResolvedPath
	if path == nil {
		// Aliases of tuples, references, slices and other composite shapes
		// name no single item to re-export.
		return nil
	}
	target, ok := c.Index[path.ID]
	if !ok {
		return nil
	}

	if args := path.Args; args != nil && args.AngleBracketed != nil {
		ab := args.AngleBracketed
		if len(ab.Bindings) != 0 {
			// A binding specializes an associated item of the target.
			return nil
		}

		aliasParams := td.Generics.Params
		targetParams := targetGenericParams(target)
		if len(aliasParams) != len(ab.Args) {
			// The alias declares a different number of parameters than it
			// passes along.
			return nil
		}
		if len(targetParams) != len(ab.Args) {
			// The target takes more parameters than supplied; the missing
			// ones get their declared defaults, which pins them.
			return nil
		}

		for i := range ab.Args {
			arg := &ab.Args[i]
			aliasParam, targetParam := &aliasParams[i], &targetParams[i]

			var argName string
			switch {
			case arg.Lifetime != nil:
				argName = *arg.Lifetime
			case arg.Type != nil:
				if arg.Type.Generic == nil {
					// A concrete type argument specializes the target.
					return nil
				}
				argName = *arg.Type.Generic
			case arg.Const != nil:
				// The expression text stands in for the name. An expression
				// that is not the bare parameter (`N + 1 - 1`) would need
				// const evaluation to recognize, so it reads as distinct.
				argName = arg.Const.Expr
			default:
				// An inferred `_` argument is not a pass-through.
				return nil
			}
			if argName != aliasParam.Name {
				// Not forwarding the alias's own parameter at this position.
				return nil
			}

			switch {
			case aliasParam.Kind.Lifetime != nil && targetParam.Kind.Lifetime != nil:
				// Aliases cannot declare outlives bounds, so the name match
				// settles the lifetime case.
			case aliasParam.Kind.Type != nil && targetParam.Kind.Type != nil:
				if !reflect.DeepEqual(aliasParam.Kind.Type.Default, targetParam.Kind.Type.Default) {
					return nil
				}
			case aliasParam.Kind.Const != nil && targetParam.Kind.Const != nil:
				ac, tc := aliasParam.Kind.Const, targetParam.Kind.Const
				if !reflect.DeepEqual(ac.Default, tc.Default) || !reflect.DeepEqual(ac.Type, tc.Type) {
					return nil
				}
			default:
				// Parameter kinds differ between alias and target.
				return nil
			}
		}
	}
	// Without an angle-bracketed argument list there is nothing the alias
	// could have specialized.
	return target
}

// targetGenericParams reads the declared generic parameters off the kinds a
// resolved type path can name.
func targetGenericParams(target *rustdoc.Item) []rustdoc.GenericParamDef {
	switch {
	case target.Inner.Struct != nil:
		return target.Inner.Struct.Generics.Params
	case target.Inner.Enum != nil:
		return target.Inner.Enum.Generics.Params
	case target.Inner.Trait != nil:
		return target.Inner.Trait.Generics.Params
	case target.Inner.Union != nil:
		return target.Inner.Union.Generics.Params
	case target.Inner.Typedef != nil:
		return target.Inner.Typedef.Generics.Params
	default:
		panic(fmt.Sprintf("rustdocindex: type alias target %s is a %s, which cannot be named in type position",
			target.ID, target.Inner.Kind()))
	}
}
