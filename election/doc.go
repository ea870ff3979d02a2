// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the ballotbox election state machine.

# State Machine

A Machine owns the entire election state: the single authority
identity, the participant registry, the append-only candidate list,
the activation flag, the vote total, and the audit log. One mutex
serializes every operation, so callers observe a single linear
history.

	machine, err := election.NewMachine("authority@example")
	err = machine.RegisterParticipant("authority@example", "alice")
	cand, err := machine.AddCandidate("authority@example", "Proposal A")
	_, err = machine.ToggleActivation("authority@example")
	err = machine.CastVote("alice", cand.ID)

# Validate Then Commit

Every mutation performs all of its checks before its first write.
A failure returns one of the sentinel errors in errors.go with zero
state change and no audit entry. CastVote's four effects (voted flag,
candidate count, total, audit append) land together or not at all.

# Tally

	results := machine.Results()   // all candidates + winner id
	winner, ok := machine.Winner() // leading name/count
	stats := machine.Stats()       // candidate count, total, active, authority

Ties break to the lowest candidate id: the scan only displaces the
leader on a strictly greater count.

# Audit Log

Each committed mutation appends one Event with a dense sequence
number and a SHA-256 hash chained over the previous event:

	events := machine.Audit().EventsSince(0)
	report := election.VerifyEvents(events)

Restore rebuilds a machine from persisted events, refusing corrupted
chains:

	machine, err := election.Restore("authority@example", events)
*/
package election
