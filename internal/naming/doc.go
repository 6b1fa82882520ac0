// Package naming computes and vets new entry names: literal substitution,
// the ordered rejection rules (forbidden characters, empty result, reserved
// device names) and collision-safe destination resolution.
//
// Collision variants use the "stem(k)suffix" form where stem and suffix come
// from [SplitName]; k is the smallest positive integer whose path is vacant.
package naming
