// Package ui implements an interactive terminal player using bubbletea's Elm architecture.
//
// The TUI shows the catalog as a filterable [list.Model] with a status line underneath:
//   - enter plays the selected video, r plays a random one
//   - p pauses or continues, s stops
//   - / filters by title or tag, q quits
//
// The [Model] drives a [player.Controller] through Init/Update/View. Playback operations run as [tea.Cmd]s that
// report back through the Msg union, so the same notices the console prints show up as the last action line.
package ui
