package auctiondb

import (
	"database/sql"
	"github.com/arkadda/seri/log"
	"github.com/pkg/errors"
	"time"
)

var logger = log.ModuleLogger("auctiondb")

const CreateMigrationsQuery = `
CREATE TABLE IF NOT EXISTS migrations (
	id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
	name VARCHAR NOT NULL,
	applied_at INTEGER NOT NULL
);
`

type Migration struct {
	Query string
	Name  string
}

var Migrations = []*Migration{
	{
		Query: `
CREATE TABLE pending_bids (
	id VARCHAR NOT NULL PRIMARY KEY,
	message VARCHAR NOT NULL,
	token_id VARCHAR,
	token_amount INTEGER NOT NULL DEFAULT 0,
	box_id VARCHAR,
	tx_id VARCHAR,
	status VARCHAR NOT NULL,
	amount INTEGER NOT NULL,
	currency VARCHAR NOT NULL,
	is_first BOOLEAN NOT NULL,
	prev_end_time INTEGER NOT NULL DEFAULT 0,
	end_time INTEGER NOT NULL DEFAULT 0,
	extended BOOLEAN NOT NULL DEFAULT FALSE,
	address VARCHAR NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX idx_pending_bids_status ON pending_bids(status);
`,
		Name: "create_pending_bids",
	},
}

func MigrateDB(e *Engine) error {
	return e.Transaction(func(tx Transactor) error {
		if _, err := tx.Exec(CreateMigrationsQuery); err != nil {
			return errors.Wrap(err, "error creating migrations table")
		}

		var lastApplied string
		row := tx.QueryRow("SELECT name FROM migrations ORDER BY id DESC LIMIT 1")
		if err := row.Scan(&lastApplied); err != nil && err != sql.ErrNoRows {
			return errors.Wrap(err, "error reading migration state")
		}

		applying := lastApplied == ""
		for _, migration := range Migrations {
			if !applying {
				applying = migration.Name == lastApplied
				continue
			}

			logger.Info("applying migration", "name", migration.Name)
			if _, err := tx.Exec(migration.Query); err != nil {
				return errors.Wrapf(err, "error applying migration %s", migration.Name)
			}
			if _, err := tx.Exec(
				"INSERT INTO migrations(name, applied_at) VALUES(?, ?)",
				migration.Name,
				time.Now().Unix(),
			); err != nil {
				return errors.Wrap(err, "error recording migration")
			}
		}
		return nil
	})
}
