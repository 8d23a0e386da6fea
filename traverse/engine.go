package traverse

// Engine combines one result-shaping policy and one execution policy into a
// concrete traversal: shape once, then populate once, then return. The engine
// iterates nothing itself; it only sequences the two policy calls.
//
// Both policies are zero-sized tag types supplied as type parameters, so an
// incompatible pairing — or a callable that doesn't satisfy what the pair
// requires, such as an effect-only func(T) where a map-style pairing needs
// func(T) U — fails to compile at the instantiation site.
type Engine[S, D, F any, NP Shaper[S, D, F], XP Executor[S, D, F]] struct{}

// Do runs the traversal over src with fn.
func (Engine[S, D, F, NP, XP]) Do(src S, fn F) D {
	var shape NP
	var exec XP

	dst := shape.Shape(src, fn)

	return exec.Execute(dst, src, fn)
}
