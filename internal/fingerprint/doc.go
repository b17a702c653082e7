// Package fingerprint condenses a canonical table into a SHA-256 content
// digest.
//
// Two strategies are offered and both consume the canonicalizer's output:
//   - Ordered: hashes the row-major serialization (fields comma-joined,
//     records newline-terminated, no header), so permuting rows changes
//     the digest.
//   - Unordered: hashes each row to its own hex digest, sorts the digests,
//     and hashes the concatenation. The sort gives the digests a canonical
//     total order, which removes row-order sensitivity while keeping
//     multiset semantics: duplicate rows contribute duplicate digests.
//
// Both strategies are pure functions of the table contents. The unordered
// strategy may hash rows on a bounded worker pool; the sort normalizes away
// completion order, so the worker count can never change a digest.
//
// The result is always a lowercase 64-character hex string.
package fingerprint
