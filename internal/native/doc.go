// Package native mirrors the enumeration values of the Aerospike C client
// library and the option keys of the client binding built on top of it.
//
// The values in this package are owned by the native library: they are
// copied verbatim from its headers for the version named by LibraryVersion
// and must be updated together with it. Nothing else in the module spells
// out a native number; the catalog resolves every numeric constant through
// a Source, so an upgrade of the library only touches this package.
//
// An independent oracle (for example a symbol file generated from the C
// headers, see package oracle) can be used in place of Linked to detect
// drift between this package and the real library.
package native
