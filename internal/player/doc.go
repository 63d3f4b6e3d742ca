// Package player implements the playback state machine.
//
// A [Controller] moves between three states:
//
//	Stopped --Play/PlayRandom--> Playing --Pause--> Paused
//	Playing --Resume(err)-->     Playing
//	Paused  --Resume-->          Playing
//	Playing|Paused --Stop-->     Stopped
//	Playing|Paused --Play-->     Playing (previous video stopped first)
//
// Every operation either succeeds and returns the [Notice] values describing what happened, or fails with one of the
// shared sentinel errors and leaves the state untouched. A current video is held iff the state is not [Stopped].
//
// Random selection goes through the [Randomizer] interface so callers can make it deterministic.
package player
