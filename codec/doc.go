// Package codec decodes JSON values into typed values and encodes them back.
//
// Decoding is driven by a shape.Type descriptor. For every descriptor a Parser
// is built once, by an exhaustive switch over the descriptor kind, and cached.
// Parsers report expected failures through result.Result with a breadcrumb
// locating the offending value:
//
//	parsing field 'items': At index 1: Expected int but found str
//
// A descriptor no parser exists for is a programming error and panics with
// *UnsupportedTypeError when the parser is built.
//
// Go types are described through TypeOf; see internal/reflection for how
// struct tags, pointers, maps and enums map onto descriptors.
package codec
