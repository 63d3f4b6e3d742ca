// Package catalog provides the read-only video catalog consumed by the playback console.
//
// A [Memory] catalog is built once from a slice of videos and never changes afterwards.
// Videos can come from three places:
//   - [Embedded] : the default catalog compiled into the binary
//   - [LoadFile] : a text file with one `title | id | #tag1, #tag2` entry per line
//   - [FromSource] : any [Source], such as repositories.VideoRepository backed by SQLite
package catalog
