package xrplman

import "errors"

var (
	ErrRequestFailed     = errors.New("xrpl request failed")
	ErrInsufficientFunds = errors.New("insufficient usdc balance")
	ErrPaymentRejected   = errors.New("payment rejected by ledger")
	ErrTxNotFound        = errors.New("transaction not found")
)

// issuedAmount is the XRPL representation of an issued-currency amount.
type issuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// paymentTx is the tx_json body of a Payment submission. The node signs
// it server-side from the secret carried alongside.
type paymentTx struct {
	TransactionType string       `json:"TransactionType"`
	Account         string       `json:"Account"`
	Destination     string       `json:"Destination"`
	Amount          issuedAmount `json:"Amount"`
	SendMax         issuedAmount `json:"SendMax"`
	DestinationTag  uint32       `json:"DestinationTag,omitempty"`
}

type submitRequest struct {
	ID      int       `json:"id"`
	Command string    `json:"command"`
	TxJSON  paymentTx `json:"tx_json"`
	Secret  string    `json:"secret"`
}

type accountLinesRequest struct {
	ID          int    `json:"id"`
	Command     string `json:"command"`
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index"`
}

type accountInfoRequest struct {
	ID          int    `json:"id"`
	Command     string `json:"command"`
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index"`
}

type txRequest struct {
	ID          int    `json:"id"`
	Command     string `json:"command"`
	Transaction string `json:"transaction"`
}

// rpcStatus carries the envelope fields shared by every response.
type rpcStatus struct {
	ID           int    `json:"id"`
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

type submitResponse struct {
	rpcStatus
	Result struct {
		EngineResult        string `json:"engine_result"`
		EngineResultMessage string `json:"engine_result_message"`
		TxJSON              struct {
			Hash string `json:"hash"`
		} `json:"tx_json"`
	} `json:"result"`
}

type trustLine struct {
	Account  string `json:"account"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

type accountLinesResponse struct {
	rpcStatus
	Result struct {
		Lines []trustLine `json:"lines"`
	} `json:"result"`
}

// AccountData is the subset of account_info the resolver cares about.
type AccountData struct {
	Account  string `json:"Account"`
	Balance  string `json:"Balance"`
	Sequence uint32 `json:"Sequence"`
}

type accountInfoResponse struct {
	rpcStatus
	Result struct {
		AccountData AccountData `json:"account_data"`
	} `json:"result"`
}

type txResponse struct {
	rpcStatus
	Result struct {
		TransactionType string       `json:"TransactionType"`
		Account         string       `json:"Account"`
		Destination     string       `json:"Destination"`
		Amount          issuedAmount `json:"Amount"`
		Hash            string       `json:"hash"`
		Validated       bool         `json:"validated"`
		Meta            struct {
			TransactionResult string `json:"TransactionResult"`
		} `json:"meta"`
	} `json:"result"`
}
