package state

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/crosslock-io/swap-go/common"
	"github.com/crosslock-io/swap-go/database"
)

// SwapDB persists swap records in sqlite. The in-memory Registry stays
// the read path; this store exists so the secret survives a crash
// between escrow creation and withdrawal.
type SwapDB struct {
	stmtCache *database.StmtCache
}

func NewSwapDB(db *sql.DB) (*SwapDB, error) {
	if _, err := db.Exec(swapTable); err != nil {
		return nil, err
	}

	return &SwapDB{
		stmtCache: database.NewStmtCache(db),
	}, nil
}

func (sdb *SwapDB) Close() {
	sdb.stmtCache.Close()
}

func (sdb *SwapDB) Insert(rec *SwapRecord) error {
	query := `INSERT INTO swap (` + swapParamList + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := sdb.stmtCache.Prepare(query)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInsertSwap, err)
	}

	if _, err := stmt.Exec(sdb.flatten(rec)...); err != nil {
		return fmt.Errorf("%w: %v", ErrInsertSwap, err)
	}
	return nil
}

// Upsert writes the record whether or not the row exists yet.
func (sdb *SwapDB) Upsert(rec *SwapRecord) error {
	query := `INSERT OR REPLACE INTO swap (` + swapParamList + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := sdb.stmtCache.Prepare(query)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateSwap, err)
	}

	if _, err := stmt.Exec(sdb.flatten(rec)...); err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateSwap, err)
	}
	return nil
}

func (sdb *SwapDB) GetByOrderHash(orderHashHex string) (*SwapRecord, bool, error) {
	query := `SELECT` + swapParamList + `FROM swap WHERE orderHash = ?`
	stmt, err := sdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrGetSwap, err)
	}

	rec, err := sdb.scan(stmt.QueryRow(strings.ToLower(orderHashHex)))
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// LoadAll returns every stored record. Used at start-up to repopulate
// the registry, so an operator can still query (and recover) swaps that
// were in flight when the process died.
func (sdb *SwapDB) LoadAll() ([]*SwapRecord, error) {
	query := `SELECT` + swapParamList + `FROM swap ORDER BY createdAt ASC`
	stmt, err := sdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGetSwap, err)
	}

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGetSwap, err)
	}
	defer rows.Close()

	var recs []*SwapRecord
	for rows.Next() {
		rec, err := sdb.scan(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (sdb *SwapDB) flatten(rec *SwapRecord) []interface{} {
	return []interface{}{
		rec.OrderHashHex(),
		string(rec.Status),
		rec.EthMaker,
		rec.XrplDestination,
		rec.EthAmount,
		rec.XrplAmount,
		rec.SafetyDeposit,
		rec.Timelocks.SrcWithdrawal,
		rec.Timelocks.SrcCancellation,
		rec.Timelocks.DstWithdrawal,
		rec.Timelocks.DstCancellation,
		common.ByteSliceToPureHexStr(rec.Secret[:]),
		common.ByteSliceToPureHexStr(rec.Hashlock[:]),
		rec.EscrowTxHash,
		rec.PaymentTxHash,
		rec.WithdrawTxHash,
		rec.CancelTxHash,
		rec.ErrorKind,
		rec.ErrorMsg,
		rec.CreatedAt.Unix(),
		rec.UpdatedAt.Unix(),
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (sdb *SwapDB) scan(row rowScanner) (*SwapRecord, error) {
	var (
		rec                  SwapRecord
		orderHash            string
		status               string
		secret, hashlock     string
		createdAt, updatedAt int64
	)

	err := row.Scan(
		&orderHash,
		&status,
		&rec.EthMaker,
		&rec.XrplDestination,
		&rec.EthAmount,
		&rec.XrplAmount,
		&rec.SafetyDeposit,
		&rec.Timelocks.SrcWithdrawal,
		&rec.Timelocks.SrcCancellation,
		&rec.Timelocks.DstWithdrawal,
		&rec.Timelocks.DstCancellation,
		&secret,
		&hashlock,
		&rec.EscrowTxHash,
		&rec.PaymentTxHash,
		&rec.WithdrawTxHash,
		&rec.CancelTxHash,
		&rec.ErrorKind,
		&rec.ErrorMsg,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSwapRowInvalid, err)
	}

	rec.OrderHash = common.HexStrToBytes32(orderHash)
	rec.Status = SwapStatus(status)
	rec.Secret = common.HexStrToBytes32(secret)
	rec.Hashlock = common.HexStrToBytes32(hashlock)
	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.UpdatedAt = time.Unix(updatedAt, 0)

	return &rec, nil
}
