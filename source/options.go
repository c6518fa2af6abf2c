package source

// Options tunes adaptation (spec §4.5). It is independent of any CLI
// configuration (the demo CLI's own Config lives in cmd/config.go) —
// Options governs the adapter, not file discovery or output placement.
type Options struct {
	// Cache, when true, memoizes adaptations by host-handle identity so
	// that two adaptations of the same handle return the same *types.Type
	// (required for cycle detection and downstream memoization).
	Cache bool

	// AddMethods attaches a types.HostHandle to every adapted Type so
	// that source positions and documentation can be recovered later.
	AddMethods bool

	// PreserveSimpleAliases keeps alias wrappers even when the aliased
	// type is a simple pass-through with no added generic parameters.
	PreserveSimpleAliases bool
}

// DefaultOptions mirrors the adapter's conservative defaults: caching on
// (required for any cyclic input), no host escape hatch, degenerate
// aliases elided. The adapter always populates the reachable type graph
// eagerly; there is no deferred-population mode.
func DefaultOptions() Options {
	return Options{Cache: true}
}
