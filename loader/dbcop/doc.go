// Package dbcop implements loader.Loader for a DBCop-shaped history dump.
//
// DBCop (https://github.com/DBCop/dbcop) records histories as a JSON array
// of per-session transaction lists; this module has no JSON-schema parser
// to ground one on (spec.md §4.12), so it defines the equivalent Go-native
// shape, DBCopRecord, and decodes it with encoding/gob — the same
// session/transaction/event structure, a different wire codec.
package dbcop
