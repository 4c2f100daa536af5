package rustdocindex

import "github.com/mgr0dzicki/rustdoc-index/rustdoc"

// builtinTrait describes one well-known trait that every toolchain defines
// in a foreign crate, so snapshots reference it without containing its item.
type builtinTrait struct {
	name     string
	isAuto   bool
	isUnsafe bool
}

// builtinTraits is the fixed workaround table. It is limited to the traits
// downstream checks actually consult; the right placeholder shape for other
// foreign traits is not obvious, so they stay unsynthesized.
var builtinTraits = [...]builtinTrait{
	{name: "Debug"},
	{name: "Clone"},
	{name: "Copy"},
	{name: "PartialOrd"},
	{name: "Ord"},
	{name: "PartialEq"},
	{name: "Eq"},
	{name: "Hash"},
	{name: "Send", isAuto: true, isUnsafe: true},
	{name: "Sync", isAuto: true, isUnsafe: true},
	{name: "Unpin", isAuto: true},
	{name: "RefUnwindSafe", isAuto: true},
	{name: "UnwindSafe", isAuto: true},
	{name: "Sized"},
}

// synthesizeBuiltinTraits scans every impl block in the snapshot. Each trait
// reference whose unqualified name matches the table and whose id the
// external-summary map knows yields a placeholder trait item under that id.
// The resulting side table is merged into lookups behind the primary index
// and never mutated afterward.
func synthesizeBuiltinTraits(c *rustdoc.Crate) map[rustdoc.Id]*rustdoc.Item {
	byName := make(map[string]builtinTrait, len(builtinTraits))
	for _, bt := range builtinTraits {
		byName[bt.name] = bt
	}

	synthesized := make(map[rustdoc.Id]*rustdoc.Item)
	for _, item := range c.Index {
		impl := item.Inner.Impl
		if impl == nil || impl.Trait == nil {
			continue
		}
		bt, ok := byName[impl.Trait.Name]
		if !ok {
			continue
		}
		summary, ok := c.Paths[impl.Trait.ID]
		if !ok {
			continue
		}
		synthesized[impl.Trait.ID] = newBuiltinTraitItem(bt, impl.Trait.ID, summary.CrateID)
	}
	return synthesized
}

// newBuiltinTraitItem fabricates the placeholder: a public trait with the
// table's flags and empty everything else. Real definitions of these traits
// do carry members and bounds, but the summary map gives no way to recover
// them, so lookups against a placeholder intentionally find none.
func newBuiltinTraitItem(bt builtinTrait, id rustdoc.Id, crateID uint32) *rustdoc.Item {
	name := bt.name
	return &rustdoc.Item{
		ID:         id,
		CrateID:    crateID,
		Name:       &name,
		Visibility: rustdoc.VisibilityPublic,
		Inner: rustdoc.ItemEnum{
			Trait: &rustdoc.Trait{
				IsAuto:   bt.isAuto,
				IsUnsafe: bt.isUnsafe,
			},
		},
	}
}
