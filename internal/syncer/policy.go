package syncer

import "hotelsphere/internal/replica"

// ConflictPolicy decides which version of a record survives when a change
// event arrives for a record already held locally.
type ConflictPolicy interface {
	Resolve(local, remote replica.Record) replica.Record
}

// LastWriterWins keeps whichever version was applied last, which for an
// inbound event is always the remote one.
type LastWriterWins struct{}

func (LastWriterWins) Resolve(_, remote replica.Record) replica.Record {
	return remote
}

// ConflictPolicyFunc adapts a function to ConflictPolicy.
type ConflictPolicyFunc func(local, remote replica.Record) replica.Record

func (f ConflictPolicyFunc) Resolve(local, remote replica.Record) replica.Record {
	return f(local, remote)
}

func DefaultPolicy() ConflictPolicy {
	return LastWriterWins{}
}
