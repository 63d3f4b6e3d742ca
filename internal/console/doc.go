// Package console implements the text command surface of the player.
//
// A [Console] owns one [player.Controller] and one [playlists.Store] over a shared catalog and exposes one method per
// REPL command. Every method writes its report to the configured output and returns an error only when that write
// fails: domain failures are rendered as a single "Cannot <action>: <reason>" line and never abort the session.
//
// Searches are split in two. [Console.SearchVideos] and [Console.SearchVideosTag] print numbered results and return
// them; the caller reads an answer however it likes and hands it to [Console.PlayResult].
//
// Each command is reported to an optional [Observer] with an outcome label derived from the error kind
// (see [Outcome]), which is how metrics.Recorder counts commands.
package console
