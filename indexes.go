package rustdocindex

import (
	"fmt"

	"github.com/mgr0dzicki/rustdoc-index/rustdoc"
)

// importsIndexKinds are the kinds the import index covers: the ones
// downstream compatibility checks look up by path.
var importsIndexKinds = map[rustdoc.ItemKind]bool{
	rustdoc.KindStruct:      true,
	rustdoc.KindStructField: true,
	rustdoc.KindEnum:        true,
	rustdoc.KindVariant:     true,
	rustdoc.KindFunction:    true,
	rustdoc.KindImpl:        true,
	rustdoc.KindTrait:       true,
}

// buildImportsIndex computes every importable path of every covered item and
// groups the items by path. Distinct items sharing one spelling, such as a
// type and a value with matching names, all stay listed.
func buildImportsIndex(x *IndexedCrate, ids []rustdoc.Id) map[string][]*rustdoc.Item {
	index := make(map[string][]*rustdoc.Item, len(ids))
	for _, id := range ids {
		item := x.crate.Index[id]
		if !importsIndexKinds[item.Inner.Kind()] {
			continue
		}
		for _, path := range x.ImportablePaths(id) {
			key := path.String()
			index[key] = append(index[key], item)
		}
	}
	return index
}

// buildImplsIndex indexes every member of every impl block attached to a
// struct, enum, or union, keyed by owner id and member name. Blocks
// implementing a trait also contribute the provided methods they do not
// override, resolved from the trait's declaration, so lookup is uniform for
// written and inherited members.
func buildImplsIndex(x *IndexedCrate, ids []rustdoc.Id) map[ImplEntry][]ImplMember {
	index := make(map[ImplEntry][]ImplMember)
	for _, ownerID := range ids {
		owner := x.crate.Index[ownerID]
		var implIDs []rustdoc.Id
		switch {
		case owner.Inner.Struct != nil:
			implIDs = owner.Inner.Struct.Impls
		case owner.Inner.Enum != nil:
			implIDs = owner.Inner.Enum.Impls
		case owner.Inner.Union != nil:
			implIDs = owner.Inner.Union.Impls
		default:
			continue
		}

		for _, implID := range implIDs {
			implItem, ok := x.crate.Index[implID]
			if !ok {
				continue
			}
			impl := implItem.Inner.Impl
			if impl == nil {
				panic(fmt.Sprintf("rustdocindex: %s lists %s among its impls but it is a %s",
					ownerID, implID, implItem.Inner.Kind()))
			}

			// Provided methods the block inherits: the names in
			// ProvidedTraitMethods resolve against the trait's own items.
			// An unresolvable trait reference or a name the trait no longer
			// declares contributes nothing; synthesized builtin traits have
			// no members, so inheriting from them resolves to nothing too.
			if impl.Trait != nil {
				if traitItem := x.Item(impl.Trait.ID); traitItem != nil && traitItem.Inner.Trait != nil {
					provided := make(map[string]bool, len(impl.ProvidedTraitMethods))
					for _, name := range impl.ProvidedTraitMethods {
						provided[name] = true
					}
					for _, itemID := range traitItem.Inner.Trait.Items {
						member, ok := x.crate.Index[itemID]
						if !ok || member.Name == nil || !provided[*member.Name] {
							continue
						}
						entry := ImplEntry{Owner: ownerID, Name: *member.Name}
						index[entry] = append(index[entry], ImplMember{Impl: implItem, Member: member})
					}
				}
			}

			for _, memberID := range impl.Items {
				member, ok := x.crate.Index[memberID]
				if !ok || member.Name == nil {
					continue
				}
				entry := ImplEntry{Owner: ownerID, Name: *member.Name}
				index[entry] = append(index[entry], ImplMember{Impl: implItem, Member: member})
			}
		}
	}
	return index
}
