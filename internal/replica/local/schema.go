package local

import (
	"fmt"
	"strings"

	"hotelsphere/internal/replica"
)

const (
	settingsSlot  = 1
	bootstrapSlot = 1
)

const recordTableTemplate = `
CREATE TABLE IF NOT EXISTS %s (
	id         TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	updated_at TEXT NOT NULL
) WITHOUT ROWID;
`

const fixedTables = `
CREATE TABLE IF NOT EXISTS settings (
	slot       INTEGER PRIMARY KEY CHECK (slot = 1),
	body       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sync_state (
	slot       INTEGER PRIMARY KEY CHECK (slot = 1),
	source     TEXT NOT NULL,
	started_at TEXT NOT NULL
);
`

// recordTables are the id-keyed tables; settings live in their own single-row table.
var recordTables = []replica.Table{
	replica.Rooms,
	replica.Guests,
	replica.Bookings,
	replica.Transactions,
	replica.Groups,
}

func schema() string {
	var builder strings.Builder

	for _, table := range recordTables {
		builder.WriteString(fmt.Sprintf(recordTableTemplate, table))
	}

	builder.WriteString(fixedTables)

	return builder.String()
}

func isRecordTable(table replica.Table) bool {
	for _, t := range recordTables {
		if t == table {
			return true
		}
	}

	return false
}
