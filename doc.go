// Package qvortex implements Qvortex-Lite, a keyed 256-bit hash built
// from a data-dependent S-box, an ARX block compression function, and a
// Merkle-Damgard streaming framework. The S-box is derived from the key
// (or a fixed default) via two chained SHAKE-128 passes over a from-scratch
// Keccak-f[1600] permutation.
//
// Qvortex makes no cryptographic security claim; it is a hash primitive,
// not a certified construction. See the package-level functions Sum and
// New for one-shot and streaming use respectively.
package qvortex
