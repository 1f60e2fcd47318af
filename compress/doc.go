// Package compress provides the at-rest codecs the archive layer runs whole
// drawing streams through.
//
// A tagged drawing stream is plain text with heavy repetition (group-code
// lines, recurring symbol names), so even the fast codecs reach high ratios.
// Pick by workload:
//
//   - Zstd: best ratio, for archival and cold storage
//   - S2: fastest, for hot caches and transit between services
//   - LZ4: balanced, for general storage
//   - None: passthrough, for debugging and baseline measurement
//
// The zstd implementation switches between the cgo-backed and pure-Go
// libraries with the gozstd build tag; both sides expose the same
// ZstdCompressor type.
package compress
