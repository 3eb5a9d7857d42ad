package auctiondb

import (
	"database/sql"
	"encoding/hex"
	"github.com/arkadda/seri/auction"
	"github.com/arkadda/seri/chain"
	"github.com/pkg/errors"
	"time"
)

const pendingBidSelect = `
SELECT
	id,
	message,
	token_id,
	token_amount,
	box_id,
	tx_id,
	status,
	amount,
	currency,
	is_first,
	prev_end_time,
	end_time,
	extended,
	address
FROM pending_bids
`

// Store adapts the sqlite engine to the auction package's BidStore.
type Store struct {
	engine *Engine
}

func NewStore(engine *Engine) *Store {
	return &Store{
		engine: engine,
	}
}

func (s *Store) InsertBid(record *auction.PendingBid) error {
	return s.engine.Transaction(func(tx Transactor) error {
		return InsertBid(tx, record)
	})
}

func (s *Store) ListBids() ([]*auction.PendingBid, error) {
	var records []*auction.PendingBid
	err := s.engine.Transaction(func(tx Transactor) error {
		var err error
		records, err = ListBids(tx)
		return err
	})
	return records, err
}

func (s *Store) UpdateBidStatus(id, status, txID string) error {
	return s.engine.Transaction(func(tx Transactor) error {
		return UpdateBidStatus(tx, id, status, txID)
	})
}

func InsertBid(tx Transactor, record *auction.PendingBid) error {
	var tokenID string
	var tokenAmount int64
	if record.Info.Token != nil {
		tokenID = record.Info.Token.TokenID.String()
		tokenAmount = record.Info.Token.Amount
	}

	_, err := tx.Exec(`
INSERT INTO pending_bids(
	id,
	message,
	token_id,
	token_amount,
	box_id,
	tx_id,
	status,
	amount,
	currency,
	is_first,
	prev_end_time,
	end_time,
	extended,
	address,
	created_at
) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		record.ID,
		record.Message,
		tokenID,
		tokenAmount,
		record.Info.BoxID.String(),
		record.Info.TxID,
		record.Info.Status,
		record.Info.Amount,
		record.Info.Currency,
		record.Info.IsFirst,
		record.Info.PrevEndTime,
		record.Info.EndTime,
		record.Info.Extended,
		record.Info.Address,
		time.Now().Unix(),
	)
	return errors.WithStack(err)
}

func ListBids(tx Transactor) ([]*auction.PendingBid, error) {
	rows, err := tx.Query(pendingBidSelect + " ORDER BY created_at DESC")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	var records []*auction.PendingBid
	for rows.Next() {
		record, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, errors.WithStack(rows.Err())
}

func GetBid(tx Transactor, id string) (*auction.PendingBid, error) {
	row := tx.QueryRow(pendingBidSelect+" WHERE id = ?", id)
	record, err := scanBid(row)
	if err == sql.ErrNoRows {
		return nil, errors.Errorf("no pending bid %s", id)
	}
	return record, err
}

func UpdateBidStatus(tx Transactor, id, status, txID string) error {
	_, err := tx.Exec(
		"UPDATE pending_bids SET status = ?, tx_id = ? WHERE id = ?",
		status,
		txID,
		id,
	)
	return errors.WithStack(err)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBid(s scanner) (*auction.PendingBid, error) {
	record := new(auction.PendingBid)
	var tokenID, boxID string
	var tokenAmount int64
	err := s.Scan(
		&record.ID,
		&record.Message,
		&tokenID,
		&tokenAmount,
		&boxID,
		&record.Info.TxID,
		&record.Info.Status,
		&record.Info.Amount,
		&record.Info.Currency,
		&record.Info.IsFirst,
		&record.Info.PrevEndTime,
		&record.Info.EndTime,
		&record.Info.Extended,
		&record.Info.Address,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, errors.WithStack(err)
	}

	if tokenID != "" {
		tokenIDB, err := hex.DecodeString(tokenID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		record.Info.Token = &chain.Asset{
			TokenID: tokenIDB,
			Amount:  tokenAmount,
		}
	}
	if boxID != "" {
		boxIDB, err := hex.DecodeString(boxID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		record.Info.BoxID = boxIDB
	}
	return record, nil
}
