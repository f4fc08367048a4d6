// This is a http type of reporter.
// It fetches data from the resolver/registry
// and publishes on the http routes.

package reporter

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crosslock-io/swap-go/common"
	"github.com/crosslock-io/swap-go/escrowman"
	"github.com/crosslock-io/swap-go/resolver"
	"github.com/crosslock-io/swap-go/state"
)

const (
	ROUTE_HELLO        = "/hello"
	ROUTE_SWAP         = "/swap"
	ROUTE_SWAPS        = "/swaps"
	ROUTE_SWAP_EXECUTE = "/swap/execute"
	ROUTE_SWAP_APPROVE = "/swap/approve"
	ROUTE_SWAP_CANCEL  = "/swap/cancel"
	ROUTE_BALANCE      = "/balance"
)

type HttpReporter struct {
	serverIP   string // listen ip
	serverPort string // listen port

	// upstream data source
	rs *resolver.Resolver
}

func NewHttpReporter(serverIP string, serverPort string, rs *resolver.Resolver) *HttpReporter {
	return &HttpReporter{
		serverIP:   serverIP,
		serverPort: serverPort,
		rs:         rs,
	}
}

// Hook up routes & handlers
func (h *HttpReporter) SetupRouter() *gin.Engine {
	router := gin.Default()

	// Define routes & handlers
	router.GET(ROUTE_HELLO, Hello)
	router.GET(ROUTE_SWAP, h.Swap)
	router.GET(ROUTE_SWAPS, h.Swaps)
	router.GET(ROUTE_BALANCE, h.Balance)
	router.POST(ROUTE_SWAP_EXECUTE, h.ExecuteSwap)
	router.POST(ROUTE_SWAP_APPROVE, h.ApproveSwap)
	router.POST(ROUTE_SWAP_CANCEL, h.CancelSwap)

	return router
}

// Hook up router & ip:port
func (h *HttpReporter) Run() {
	router := h.SetupRouter()
	address := h.serverIP + ":" + h.serverPort
	if err := router.Run(address); err != nil {
		panic(err)
	}
}

// Example route.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "world",
	})
}

// swapView shapes a record for the wire: hashes as hex strings, the
// secret withheld until the swap has settled.
type swapView struct {
	OrderHash       string           `json:"order_hash"`
	Status          state.SwapStatus `json:"status"`
	EthMaker        string           `json:"eth_maker"`
	XrplDestination string           `json:"xrpl_destination"`
	EthAmount       int64            `json:"eth_amount"`
	XrplAmount      string           `json:"xrpl_amount"`
	EscrowTxHash    string           `json:"escrow_tx_hash,omitempty"`
	PaymentTxHash   string           `json:"payment_tx_hash,omitempty"`
	WithdrawTxHash  string           `json:"withdraw_tx_hash,omitempty"`
	CancelTxHash    string           `json:"cancel_tx_hash,omitempty"`
	ErrorKind       string           `json:"error_kind,omitempty"`
	ErrorMsg        string           `json:"error_msg,omitempty"`
}

func toSwapView(rec *state.SwapRecord) swapView {
	return swapView{
		OrderHash:       rec.OrderHashHex(),
		Status:          rec.Status,
		EthMaker:        rec.EthMaker,
		XrplDestination: rec.XrplDestination,
		EthAmount:       rec.EthAmount,
		XrplAmount:      rec.XrplAmount,
		EscrowTxHash:    rec.EscrowTxHash,
		PaymentTxHash:   rec.PaymentTxHash,
		WithdrawTxHash:  rec.WithdrawTxHash,
		CancelTxHash:    rec.CancelTxHash,
		ErrorKind:       rec.ErrorKind,
		ErrorMsg:        rec.ErrorMsg,
	}
}

// Fetch one swap by order hash
// Publish on the route
func (h *HttpReporter) Swap(c *gin.Context) {
	orderHash := c.Query("order_hash")
	if orderHash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_hash must be provided"})
		return
	}

	rec, err := h.rs.GetSwapStatus(orderHash)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No swap found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toSwapView(rec)})
}

// Fetch all swaps, oldest first
func (h *HttpReporter) Swaps(c *gin.Context) {
	records := h.rs.ListSwaps()
	views := make([]swapView, 0, len(records))
	for _, rec := range records {
		views = append(views, toSwapView(rec))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// Resolver's spendable balance on the counter chain
func (h *HttpReporter) Balance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"balance": h.rs.CounterBalance(c.Request.Context()),
	})
}

type executeSwapRequest struct {
	OrderHash       string          `json:"order_hash" binding:"required"`
	EthMaker        string          `json:"eth_maker" binding:"required"`
	XrplDestination string          `json:"xrpl_destination" binding:"required"`
	EthAmount       int64           `json:"eth_amount" binding:"required"`
	XrplAmount      string          `json:"xrpl_amount" binding:"required"`
	SafetyDeposit   int64           `json:"safety_deposit"`
	Timelocks       state.Timelocks `json:"timelocks" binding:"required"`
}

// Accept a swap order and start executing it. The order is validated
// and registered before the response; the protocol itself runs on its
// own goroutine and is followed via GET /swap.
func (h *HttpReporter) ExecuteSwap(c *gin.Context) {
	var req executeSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(common.Trim0xPrefix(req.OrderHash)) != 64 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_hash must be 32 bytes of hex"})
		return
	}
	orderHash := common.HexStrToBytes32(req.OrderHash)
	if common.IsZeroBytes32(orderHash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_hash must be 32 bytes of hex"})
		return
	}

	orderHex, err := h.rs.SubmitSwap(&resolver.SwapOrder{
		OrderHash:       orderHash,
		EthMaker:        req.EthMaker,
		XrplDestination: req.XrplDestination,
		EthAmount:       req.EthAmount,
		XrplAmount:      req.XrplAmount,
		SafetyDeposit:   req.SafetyDeposit,
		Timelocks:       req.Timelocks,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"data": orderHex})
	case errors.Is(err, resolver.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, state.ErrSwapExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type swapActionRequest struct {
	OrderHash string `json:"order_hash" binding:"required"`
}

// Deliver the counterparty's secret acknowledgement
func (h *HttpReporter) ApproveSwap(c *gin.Context) {
	var req swapActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_hash must be provided"})
		return
	}

	err := h.rs.ApproveSwap(req.OrderHash)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"data": "approved"})
	case errors.Is(err, state.ErrSwapNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, resolver.ErrSwapTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Abort a swap and refund its escrow
func (h *HttpReporter) CancelSwap(c *gin.Context) {
	var req swapActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_hash must be provided"})
		return
	}

	err := h.rs.CancelSwap(context.Background(), req.OrderHash)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"data": "cancelled"})
	case errors.Is(err, state.ErrSwapNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, resolver.ErrSwapTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, escrowman.ErrNotYetCancellable):
		// retryable once src_cancellation elapses
		c.JSON(http.StatusAccepted, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
