package shortestpath

// Weight is the constraint on edge-distance values: any native numeric
// type, ordered and summable via +, with its zero value as the additive
// identity.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Distance computes the weight of the edge from u to v. It is called on
// demand and must return a non-negative value; behaviour is undefined
// otherwise.
type Distance[V comparable, W Weight] func(u, v V) W

// tentative is the best known distance to a vertex and the predecessor it
// was reached from. hasPredecessor is false only for the source, which has
// no predecessor by definition — this sidesteps picking an unused V value
// as a sentinel (see the module's design notes).
type tentative[V comparable, W Weight] struct {
	distance       W
	predecessor    V
	hasPredecessor bool
}
