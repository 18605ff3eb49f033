// SPDX-License-Identifier: MIT

// Package writers serialises band tables.
//
// Design:
//   • Writers run in their own goroutine fed by a channel of Rows; the
//     caller closes the channel and reads the single error result.
//   • Formats: "tsv" (one row per k-point, optional header) and "jsonl"
//     (one JSON object per k-point).
package writers
