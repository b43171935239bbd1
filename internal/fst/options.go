package fst

// Options collects every recognized builder configuration, built via
// functional options in the same Config/DefaultConfig() idiom pkg/cleo uses.
type Options[T any] struct {
	InputType InputType
	Outputs   Outputs[T]

	MinSuffixCount1 int64
	MinSuffixCount2 int64

	DoShareSuffix           bool
	DoShareNonSingletonNodes bool
	ShareMaxTailLength      int

	// FreezeTailHook optionally replaces the default tail freezer. Most
	// callers leave this nil.
	FreezeTailHook FreezeFunc[T]

	// DoPackFST, AcceptableOverheadRatio, AllowArrayArcs, and
	// BytesPageBits are accepted and kept on Options; only DoPackFST is
	// recorded on the built FST (see FST.Packed). Packing the in-memory
	// CompiledStore itself is not implemented here.
	DoPackFST              bool
	AcceptableOverheadRatio float64
	AllowArrayArcs          bool
	BytesPageBits           int

	nodeHash NodeHash[T]
	store    CompiledStore[T]
}

// FreezeFunc is the signature of a tail-freezing policy, allowing
// FreezeTailHook to replace the default one implemented in freezer.go.
type FreezeFunc[T any] func(b *builderState[T], prefixLenPlus1 int) error

// Option configures an Options[T] via the functional-options pattern.
type Option[T any] func(*Options[T])

// DefaultOptions returns byte-input options with suffix sharing enabled and
// no pruning, using the given output algebra.
func DefaultOptions[T any](outputs Outputs[T]) *Options[T] {
	return &Options[T]{
		InputType:               ByteInput,
		Outputs:                 outputs,
		MinSuffixCount1:         0,
		MinSuffixCount2:         0,
		DoShareSuffix:           true,
		DoShareNonSingletonNodes: true,
		ShareMaxTailLength:      1 << 30,
		AcceptableOverheadRatio: 1.0,
	}
}

// WithInputType sets the label domain.
func WithInputType[T any](t InputType) Option[T] {
	return func(o *Options[T]) { o.InputType = t }
}

// WithMinSuffixCount1 sets the primary prune threshold.
func WithMinSuffixCount1[T any](n int64) Option[T] {
	return func(o *Options[T]) { o.MinSuffixCount1 = n }
}

// WithMinSuffixCount2 sets the secondary prune threshold.
func WithMinSuffixCount2[T any](n int64) Option[T] {
	return func(o *Options[T]) { o.MinSuffixCount2 = n }
}

// WithShareSuffix enables or disables structural deduplication entirely.
func WithShareSuffix[T any](enabled bool) Option[T] {
	return func(o *Options[T]) { o.DoShareSuffix = enabled }
}

// WithShareNonSingletonNodes allows (or forbids) dedup of nodes with more
// than one arc.
func WithShareNonSingletonNodes[T any](enabled bool) Option[T] {
	return func(o *Options[T]) { o.DoShareNonSingletonNodes = enabled }
}

// WithShareMaxTailLength caps dedup to nodes within this distance of the
// tail.
func WithShareMaxTailLength[T any](n int) Option[T] {
	return func(o *Options[T]) { o.ShareMaxTailLength = n }
}

// WithFreezeTailHook replaces the default tail-freezing policy.
func WithFreezeTailHook[T any](fn FreezeFunc[T]) Option[T] {
	return func(o *Options[T]) { o.FreezeTailHook = fn }
}

// WithPackFST records that the caller intends to pack the resulting FST
// out-of-tree.
func WithPackFST[T any](enabled bool, acceptableOverheadRatio float64) Option[T] {
	return func(o *Options[T]) {
		o.DoPackFST = enabled
		o.AcceptableOverheadRatio = acceptableOverheadRatio
	}
}

// WithAllowArrayArcs records whether the downstream compiled-store backend
// may use an array-arc layout.
func WithAllowArrayArcs[T any](enabled bool) Option[T] {
	return func(o *Options[T]) { o.AllowArrayArcs = enabled }
}

// WithBytesPageBits sets the page size for the byte-store backing the
// compiled nodes.
func WithBytesPageBits[T any](bits int) Option[T] {
	return func(o *Options[T]) { o.BytesPageBits = bits }
}

// WithNodeHash overrides the structural dedup table, e.g. with a
// BoundedNodeHash for bounded memory use.
func WithNodeHash[T any](h NodeHash[T]) Option[T] {
	return func(o *Options[T]) { o.nodeHash = h }
}

// WithCompiledStore overrides the compiled-node storage backend.
func WithCompiledStore[T any](s CompiledStore[T]) Option[T] {
	return func(o *Options[T]) { o.store = s }
}

func (o *Options[T]) apply(opts []Option[T]) {
	for _, opt := range opts {
		opt(o)
	}
}
