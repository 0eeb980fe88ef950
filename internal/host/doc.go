// Package host models the class of the embedding runtime that constants are
// published onto.
//
// Class is the narrow contract the catalog needs: one primitive to declare
// an integer constant and one to declare a string constant. Namespace is the
// concrete host used by this module. It stores constants as cty values and
// exposes them to HCL expressions as attributes of a single variable, so a
// configuration can write `Aerospike.POLICY_EXISTS_CREATE` instead of a
// magic number.
package host
