// Package catalog holds the fixed list of named option constants of the
// Aerospike client binding and publishes it onto a host class.
//
// The catalog is a single ordered sequence of entries. Each entry pairs a
// published name with a tagged value, either an integer resolved from the
// native library through a native.Source or a fixed string. Integer entries
// come first, then text entries, each group in declaration order.
//
// Register walks the sequence once and calls the matching host primitive for
// every entry. It stops at the first failure and leaves already declared
// constants in place. Publisher wraps Register in a run-once guard for hosts
// that cannot promise a single caller.
//
// Names are checked for emptiness and uniqueness when a catalog is built, so
// a duplicate can never silently shadow an earlier declaration.
package catalog
