// Package syntax derives scope-aware indentation from buffer content.
//
// Parse builds a lightweight bracket-scope tree mapping byte offsets to
// nesting depth. The depth can optionally be post-processed by
// Lua-defined indent rules, so a config file can reshape indentation
// without recompiling. An Indenter bundles the two behind the indent
// query interface the edit primitives consume.
package syntax
