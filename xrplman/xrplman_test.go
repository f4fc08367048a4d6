package xrplman

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer      = "rHuGNhqTG32mfmAvWA8hUyWRLV3tCSwKQt"
	testResolver    = "rResolverAccount111111111111111"
	testDestination = "rMakerAccount1111111111111111111"
	testPaymentHash = "A1B2C3D4E5F60708A1B2C3D4E5F60708A1B2C3D4E5F60708A1B2C3D4E5F60708"
)

// fakeNode answers each websocket request with a canned reply keyed by
// the XRPL command name.
type fakeNode struct {
	server  *httptest.Server
	replies map[string]func(req map[string]interface{}) map[string]interface{}
}

func newFakeNode(t *testing.T) *fakeNode {
	node := &fakeNode{
		replies: map[string]func(map[string]interface{}) map[string]interface{}{},
	}

	upgrader := websocket.Upgrader{}
	node.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		for {
			var req map[string]interface{}
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			command, _ := req["command"].(string)
			handler, ok := node.replies[command]
			require.True(t, ok, "unexpected command %q", command)

			reply := handler(req)
			reply["id"] = req["id"]
			require.NoError(t, conn.WriteJSON(reply))
		}
	}))
	t.Cleanup(node.server.Close)

	return node
}

func (n *fakeNode) wsURL() string {
	return "ws" + strings.TrimPrefix(n.server.URL, "http")
}

func (n *fakeNode) on(command string, handler func(map[string]interface{}) map[string]interface{}) {
	n.replies[command] = handler
}

func (n *fakeNode) balance(value string) {
	n.on("account_lines", func(map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"status": "success",
			"result": map[string]interface{}{
				"lines": []map[string]interface{}{
					{"account": testIssuer, "currency": "USD", "balance": value},
					{"account": testIssuer, "currency": "EUR", "balance": "500"},
				},
			},
		}
	})
}

func getTestXrplman(t *testing.T, node *fakeNode) *Xrplman {
	xm, err := NewXrplman(&Config{
		WsURL:         node.wsURL(),
		Address:       testResolver,
		Secret:        "shhh_test_seed",
		IssuerAddress: testIssuer,
		Currency:      "USD",
	})
	require.NoError(t, err)
	return xm
}

func TestSendPayment(t *testing.T) {
	node := newFakeNode(t)
	node.balance("250.5")

	var submitted map[string]interface{}
	node.on("submit", func(req map[string]interface{}) map[string]interface{} {
		submitted = req
		return map[string]interface{}{
			"status": "success",
			"result": map[string]interface{}{
				"engine_result": "tesSUCCESS",
				"tx_json":       map[string]interface{}{"hash": testPaymentHash},
			},
		}
	})

	xm := getTestXrplman(t, node)
	txHash, err := xm.SendPayment(context.Background(), testDestination, "99.000000")
	require.NoError(t, err)
	assert.Equal(t, testPaymentHash, txHash)

	// the submitted tx must carry SendMax and the configured issuer
	raw, _ := json.Marshal(submitted["tx_json"])
	var tx paymentTx
	require.NoError(t, json.Unmarshal(raw, &tx))
	assert.Equal(t, "Payment", tx.TransactionType)
	assert.Equal(t, testResolver, tx.Account)
	assert.Equal(t, testDestination, tx.Destination)
	assert.Equal(t, "99.000000", tx.Amount.Value)
	assert.Equal(t, tx.Amount, tx.SendMax)
	assert.Equal(t, testIssuer, tx.Amount.Issuer)
}

func TestSendPaymentInsufficientFunds(t *testing.T) {
	node := newFakeNode(t)
	node.balance("10")

	xm := getTestXrplman(t, node)
	_, err := xm.SendPayment(context.Background(), testDestination, "99.000000")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestSendPaymentEngineFailure(t *testing.T) {
	node := newFakeNode(t)
	node.balance("250")
	node.on("submit", func(map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"status": "success",
			"result": map[string]interface{}{
				"engine_result":         "tecPATH_DRY",
				"engine_result_message": "Path could not send partial amount.",
			},
		}
	})

	xm := getTestXrplman(t, node)
	_, err := xm.SendPayment(context.Background(), testDestination, "99.000000")
	assert.ErrorIs(t, err, ErrPaymentRejected)
	assert.Contains(t, err.Error(), "tecPATH_DRY")
}

func TestSendPaymentToSelf(t *testing.T) {
	node := newFakeNode(t)
	xm := getTestXrplman(t, node)

	_, err := xm.SendPayment(context.Background(), testResolver, "1.000000")
	assert.ErrorIs(t, err, ErrPaymentRejected)
}

func TestCheckBalance(t *testing.T) {
	node := newFakeNode(t)
	node.balance("250.5")

	xm := getTestXrplman(t, node)
	assert.Equal(t, "250.5", xm.CheckBalance(context.Background(), testResolver))
}

func TestCheckBalanceIssuerSideNegated(t *testing.T) {
	node := newFakeNode(t)
	node.balance("-42.25")

	xm := getTestXrplman(t, node)
	assert.Equal(t, "42.25", xm.CheckBalance(context.Background(), testResolver))
}

func TestCheckBalanceNoTrustLine(t *testing.T) {
	node := newFakeNode(t)
	node.on("account_lines", func(map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"status": "success",
			"result": map[string]interface{}{"lines": []map[string]interface{}{}},
		}
	})

	xm := getTestXrplman(t, node)
	assert.Equal(t, "0", xm.CheckBalance(context.Background(), testResolver))
}

func TestCheckBalanceNodeDown(t *testing.T) {
	node := newFakeNode(t)
	xm := getTestXrplman(t, node)
	node.server.Close()

	assert.Equal(t, "0", xm.CheckBalance(context.Background(), testResolver))
}

func TestVerifyPayment(t *testing.T) {
	node := newFakeNode(t)
	node.on("tx", func(req map[string]interface{}) map[string]interface{} {
		assert.Equal(t, testPaymentHash, req["transaction"])
		return map[string]interface{}{
			"status": "success",
			"result": map[string]interface{}{
				"TransactionType": "Payment",
				"Account":         testResolver,
				"Destination":     testDestination,
				"Amount": map[string]interface{}{
					"currency": "USD",
					"issuer":   testIssuer,
					"value":    "99",
				},
				"hash":      testPaymentHash,
				"validated": true,
				"meta":      map[string]interface{}{"TransactionResult": "tesSUCCESS"},
			},
		}
	})

	xm := getTestXrplman(t, node)

	ok, err := xm.VerifyPayment(context.Background(), testPaymentHash, testDestination, "99.000000")
	require.NoError(t, err)
	assert.True(t, ok)

	// wrong destination or amount must not verify
	ok, err = xm.VerifyPayment(context.Background(), testPaymentHash, testResolver, "99.000000")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = xm.VerifyPayment(context.Background(), testPaymentHash, testDestination, "98.000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPaymentNotFound(t *testing.T) {
	node := newFakeNode(t)
	node.on("tx", func(map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"status":        "error",
			"error":         "txnNotFound",
			"error_message": "Transaction not found.",
		}
	})

	xm := getTestXrplman(t, node)
	_, err := xm.VerifyPayment(context.Background(), testPaymentHash, testDestination, "99.000000")
	assert.ErrorIs(t, err, ErrTxNotFound)
}

func TestVerifyPaymentUnvalidated(t *testing.T) {
	node := newFakeNode(t)
	node.on("tx", func(map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"status": "success",
			"result": map[string]interface{}{
				"TransactionType": "Payment",
				"Destination":     testDestination,
				"Amount": map[string]interface{}{
					"currency": "USD", "issuer": testIssuer, "value": "99",
				},
				"validated": false,
			},
		}
	})

	xm := getTestXrplman(t, node)
	ok, err := xm.VerifyPayment(context.Background(), testPaymentHash, testDestination, "99.000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestXrpBalance(t *testing.T) {
	node := newFakeNode(t)
	node.on("account_info", func(map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"status": "success",
			"result": map[string]interface{}{
				"account_data": map[string]interface{}{
					"Account":  testResolver,
					"Balance":  "25500000",
					"Sequence": 7,
				},
			},
		}
	})

	xm := getTestXrplman(t, node)
	assert.Equal(t, "25.500000", xm.XrpBalance(context.Background(), testResolver))

	info, err := xm.GetAccountInfo(context.Background(), testResolver)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), info.Sequence)
}
