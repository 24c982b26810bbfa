// Package textutil provides text helpers shared by log extraction, artifact
// archival, and output naming.
//
// The primary use cases are:
//   - Decoding engine logs written as UTF-8, UTF-16 with a BOM, or
//     Windows-1252 into UTF-8
//   - Sanitizing filenames and path segments for safe filesystem use
package textutil
