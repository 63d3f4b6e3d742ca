// Package models defines the domain values shared by the playback console.
//
// The package contains:
//   - [Video] : An immutable catalog entry with an id, title and tags
//   - [Catalog] : The read-only lookup contract consumed by the player, playlist store and search
//
// Videos are owned by their catalog. Other components hold them by value and never mutate them,
// so a [Video] returned from a [Catalog] is safe to keep for the lifetime of the process.
package models
