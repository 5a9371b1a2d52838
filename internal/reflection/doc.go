// Package reflection computes the concrete field types of record descriptors.
//
// Key capabilities:
//   - Binding of declared type parameters to use-site arguments
//   - Recursive substitution of parameters inside field types
//   - Derivation of descriptors from Go types through reflect
//
// Resolution is permissive: a parameter with no argument resolves to Any.
package reflection
