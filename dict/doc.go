// Package dict provides Dict, the keyed collection behind compound values of
// the document language: arrays and records share one representation, since
// an array is just a record whose keys are 0..n-1.
//
// # Keys
//
// A [Key] is either numeric ([Num]) or a string ([Str]). The two key spaces
// are kept apart, so Str("10") and Num(10) address different entries.
// [KeyOf] converts unsigned integers and strings; [Borrow] builds a lookup
// key over a byte slice without copying it.
//
// # Arrays
//
// [Dict.Push] appends at the lowest free numeric key. It reuses keys freed by
// [Dict.Remove] and skips keys already claimed by [Dict.Insert]:
//
//	d := dict.New[string]()
//	d.Insert(dict.Num(2), "two")
//	d.Push("zero")  // key 0
//	d.Push("one")   // key 1
//	d.Push("three") // key 3, 2 is taken
//
// [Dict.First] and [Dict.Last] look only at numeric keys.
//
// # Iteration and equality
//
// [Dict.All] yields numeric entries in ascending order, then string entries
// in byte-wise lexicographic order. [Equal] compares that canonical sequence,
// so two dicts built in a different insertion order are equal.
//
// # Diagnostics
//
// A Dict formats itself with fmt (%v compact, %#v pretty), logs as a slog
// group, and hashes through the hashing package. [SpannedEntry] attaches
// source spans to entries built from literals.
package dict
