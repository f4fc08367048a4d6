package xrplman

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/gorilla/websocket"
	logger "github.com/sirupsen/logrus"

	"github.com/crosslock-io/swap-go/common"
)

const dropsPerXrp = 1_000_000

// Xrplman sends and verifies issued-currency payments on an XRPL node.
// Every call dials its own websocket connection, so a flaky node only
// costs the one request and there is no session state to reconcile.
type Xrplman struct {
	cfg    *Config
	nextID atomic.Int64
}

func NewXrplman(cfg *Config) (*Xrplman, error) {
	if cfg.WsURL == "" {
		return nil, fmt.Errorf("%w: websocket URL not set", ErrRequestFailed)
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("%w: resolver address not set", ErrRequestFailed)
	}
	return &Xrplman{cfg: cfg}, nil
}

func (xm *Xrplman) Account() string {
	return xm.cfg.Address
}

// SendPayment pays amount (a decimal string, e.g. "99.000000") of the
// configured issued currency to destination. It returns the transaction
// hash of the validated submission.
func (xm *Xrplman) SendPayment(ctx context.Context, destination, amount string) (string, error) {
	if destination == xm.cfg.Address {
		return "", fmt.Errorf("%w: destination is the resolver account", ErrPaymentRejected)
	}

	need, err := common.DecimalStringToUnits(amount)
	if err != nil {
		return "", fmt.Errorf("%w: bad amount %q: %v", ErrPaymentRejected, amount, err)
	}
	have, err := common.DecimalStringToUnits(xm.CheckBalance(ctx, xm.cfg.Address))
	if err != nil || have < need {
		return "", fmt.Errorf("%w: have %d units, need %d", ErrInsufficientFunds, have, need)
	}

	iou := issuedAmount{
		Currency: xm.cfg.Currency,
		Issuer:   xm.cfg.IssuerAddress,
		Value:    amount,
	}
	req := &submitRequest{
		ID:      xm.requestID(),
		Command: "submit",
		TxJSON: paymentTx{
			TransactionType: "Payment",
			Account:         xm.cfg.Address,
			Destination:     destination,
			Amount:          iou,
			SendMax:         iou,
			DestinationTag:  xm.cfg.DestinationTag,
		},
		Secret: xm.cfg.Secret,
	}

	var resp submitResponse
	if err := xm.do(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.Status == "error" {
		return "", fmt.Errorf("%w: %s: %s", ErrPaymentRejected, resp.Error, resp.ErrorMessage)
	}
	if resp.Result.EngineResult != "tesSUCCESS" {
		return "", fmt.Errorf("%w: %s: %s", ErrPaymentRejected,
			resp.Result.EngineResult, resp.Result.EngineResultMessage)
	}

	logger.WithFields(logger.Fields{
		"txHash":      resp.Result.TxJSON.Hash,
		"destination": destination,
		"amount":      amount,
	}).Info("xrpl payment submitted")

	return resp.Result.TxJSON.Hash, nil
}

// CheckBalance returns the issued-currency balance of account as a
// decimal string. Any failure yields "0" rather than an error: a
// missing trust line and an unreachable node both mean the funds
// cannot be spent right now.
func (xm *Xrplman) CheckBalance(ctx context.Context, account string) string {
	req := &accountLinesRequest{
		ID:          xm.requestID(),
		Command:     "account_lines",
		Account:     account,
		LedgerIndex: "validated",
	}

	var resp accountLinesResponse
	if err := xm.do(ctx, req, &resp); err != nil {
		logger.Warnf("could not fetch trust lines for %s: %v", account, err)
		return "0"
	}
	if resp.Status == "error" {
		logger.Warnf("account_lines for %s: %s", account, resp.Error)
		return "0"
	}

	for _, line := range resp.Result.Lines {
		if line.Currency == xm.cfg.Currency && line.Account == xm.cfg.IssuerAddress {
			// Issuer-side lines report the holder's balance negated.
			return strings.TrimPrefix(line.Balance, "-")
		}
	}
	return "0"
}

// VerifyPayment reports whether txHash is a validated Payment of the
// configured currency delivering amount to destination.
func (xm *Xrplman) VerifyPayment(ctx context.Context, txHash, destination, amount string) (bool, error) {
	req := &txRequest{
		ID:          xm.requestID(),
		Command:     "tx",
		Transaction: txHash,
	}

	var resp txResponse
	if err := xm.do(ctx, req, &resp); err != nil {
		return false, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.Status == "error" {
		if resp.Error == "txnNotFound" {
			return false, fmt.Errorf("%w: %s", ErrTxNotFound, txHash)
		}
		return false, fmt.Errorf("%w: %s: %s", ErrRequestFailed, resp.Error, resp.ErrorMessage)
	}

	r := resp.Result
	if !r.Validated || r.TransactionType != "Payment" {
		return false, nil
	}
	if r.Meta.TransactionResult != "" && r.Meta.TransactionResult != "tesSUCCESS" {
		return false, nil
	}
	if r.Destination != destination {
		return false, nil
	}
	if r.Amount.Currency != xm.cfg.Currency || r.Amount.Issuer != xm.cfg.IssuerAddress {
		return false, nil
	}

	want, err := common.DecimalStringToUnits(amount)
	if err != nil {
		return false, err
	}
	got, err := common.DecimalStringToUnits(r.Amount.Value)
	if err != nil {
		return false, nil
	}
	return got == want, nil
}

// GetAccountInfo fetches account_data from the validated ledger.
func (xm *Xrplman) GetAccountInfo(ctx context.Context, account string) (*AccountData, error) {
	req := &accountInfoRequest{
		ID:          xm.requestID(),
		Command:     "account_info",
		Account:     account,
		LedgerIndex: "validated",
	}

	var resp accountInfoResponse
	if err := xm.do(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.Status == "error" {
		return nil, fmt.Errorf("%w: %s: %s", ErrRequestFailed, resp.Error, resp.ErrorMessage)
	}
	data := resp.Result.AccountData
	return &data, nil
}

// XrpBalance returns the account's XRP balance in whole XRP, for fee
// headroom checks. Failures yield "0".
func (xm *Xrplman) XrpBalance(ctx context.Context, account string) string {
	info, err := xm.GetAccountInfo(ctx, account)
	if err != nil {
		logger.Warnf("could not fetch account info for %s: %v", account, err)
		return "0"
	}

	drops, ok := new(big.Int).SetString(info.Balance, 10)
	if !ok {
		return "0"
	}
	xrp := new(big.Rat).SetFrac(drops, big.NewInt(dropsPerXrp))
	return xrp.FloatString(6)
}

func (xm *Xrplman) requestID() int {
	return int(xm.nextID.Add(1))
}

// do performs one request/response round trip on a fresh connection.
func (xm *Xrplman) do(ctx context.Context, req, resp interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, xm.cfg.requestTimeout())
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, xm.cfg.WsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.SetReadDeadline(deadline)
	}

	if err := conn.WriteJSON(req); err != nil {
		return err
	}
	return conn.ReadJSON(resp)
}
