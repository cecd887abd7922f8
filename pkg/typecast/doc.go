// Package typecast converts raw input values into typed values that can be
// compared against constraint bounds.
//
// Raw values always arrive as strings (multi-value inputs are comma-joined by
// the value source). Cast turns them into a Value of one of the supported data
// types:
//
//   - number:  parsed with strconv; non-numeric input yields NaN, empty input 0
//   - date:    parsed with the configured DateFormat ("dd/MM/yyyy" by default)
//   - string:  identity
//   - boolean: identity
//
// Casting is pure and total. The only error source is an invalid DateFormat,
// which is reported once when the Caster is built.
//
// # Usage
//
//	caster := typecast.MustNewCaster("dmy")
//	v := caster.Cast("-5", typecast.Number)
//	bound := caster.CastLiteral(0, typecast.Number)
//	if c, ok := typecast.Compare(v, bound); ok && c < 0 {
//	    // below minimum
//	}
//
// Compare reports ok=false whenever either side is NaN or the kinds differ, so
// callers treat such comparisons as failing rather than panicking.
package typecast
