// Package config implements the layered configuration engine: a typed
// scalar model for the on-disk layer format, deep-merge semantics between
// the shipped base layer and the persisted override layer, and a
// deterministic writer whose key ordering follows the parameter catalog so
// that successive writes produce minimal diffs.
//
// Reading uses a TOML parser (the layer format is a strict TOML subset);
// writing is done by hand because the emission order is caller-controlled.
package config
