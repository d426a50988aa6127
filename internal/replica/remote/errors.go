package remote

import (
	"context"
	"database/sql/driver"
	"errors"
	"hotelsphere/shared/constant"
	gRepo "hotelsphere/shared/repository"
	"net"

	"github.com/lib/pq"
)

// ErrorKind groups remote failures by how the client should react to them.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	// KindUnreachable: keep operating locally and surface the health flag.
	KindUnreachable
	// KindSchemaMismatch: the remote table lacks a column or table this build writes.
	KindSchemaMismatch
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnreachable:
		return "unreachable"
	case KindSchemaMismatch:
		return "schema_mismatch"
	default:
		return "other"
	}
}

// SchemaHint is logged next to schema mismatches.
const SchemaHint = "remote schema is behind this build, run `migrate up` against the replica"

func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUndefinedColumn, constant.PqErrorCodeUndefinedTable:
			return KindSchemaMismatch
		default:
			return KindOther
		}
	}

	if errors.Is(err, gRepo.ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) {
		return KindUnreachable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindUnreachable
	}

	return KindOther
}
