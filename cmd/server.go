// Server = eth-side escrow client + xrpl-side payment client + db/registry + http reporter.
// All components are configured via environment variables (strings!).

package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	_ "github.com/mattn/go-sqlite3"
	logger "github.com/sirupsen/logrus"

	"github.com/crosslock-io/swap-go/escrowman"
	"github.com/crosslock-io/swap-go/reporter"
	"github.com/crosslock-io/swap-go/resolver"
	"github.com/crosslock-io/swap-go/state"
	"github.com/crosslock-io/swap-go/xrplman"
)

// Default params for server.
// More often we don't recommend users to tweak those.
// So we list them here.
const (
	defaultConfirmTimeout = 5 * time.Minute
	defaultConfirmBuffer  = 35 * time.Second
	defaultAckTimeout     = 10 * time.Minute
	defaultApproveDelay   = 2 * time.Second

	defaultXrplCurrency = "USD"
	defaultXrplIssuer   = "rHuGNhqTG32mfmAvWA8hUyWRLV3tCSwKQt"
)

// Keep the configuration's fields as "text" as possible.
// Its easier to load it from env vars or a config file.
type ResolverServerConfig struct {
	// eth side
	EthRpcUrl          string // json rpc url
	EthCoreAccountPriv string // private key of the resolver controlled account
	EscrowContractAddr string // escrow contract address
	UsdcContractAddr   string // usdc token contract address

	// xrpl side
	XrplWsUrl       string // websocket url of the xrpl node
	XrplAccountAddr string // resolver classic address
	XrplAccountSeed string // seed for server-side signing
	XrplIssuerAddr  string // usdc issuer, defaults to the well-known testnet issuer
	XrplCurrency    string // defaults to USD

	// state side
	DbFilePath string // db file path, empty disables persistence

	// swap policy
	MinAmount       string // base units, 6 decimals
	MaxAmount       string // base units, 6 decimals
	DemoAutoApprove string // "true" lets the server stand in for the counterparty

	// Http side
	HttpIp   string // eg. 0.0.0.0
	HttpPort string // eg. 8080
}

// ResolverServer holds the objects that consists of the swap resolver.
type ResolverServer struct {
	MyEscrowman *escrowman.Escrowman
	MyXrplman   *xrplman.Xrplman
	MyRegistry  *state.Registry
	MySwapDb    *state.SwapDB
	MyResolver  *resolver.Resolver
	MyReporter  *reporter.HttpReporter
}

// NewResolverServer creates a new resolver server.
// ctx is used for parental context to cancel the operation of the server.
// wg is used to wait for the goroutines inside the server (http reporter) to finish.
func NewResolverServer(rsc *ResolverServerConfig, ctx context.Context, wg *sync.WaitGroup) (*ResolverServer, error) {
	// ETH side: escrow client over the resolver's account
	myEscrowman, err := escrowman.NewEscrowman(&escrowman.Config{
		URL:                   rsc.EthRpcUrl,
		EscrowContractAddress: ethcommon.HexToAddress(rsc.EscrowContractAddr),
		UsdcTokenAddress:      ethcommon.HexToAddress(rsc.UsdcContractAddr),
		PrivateKey:            rsc.EthCoreAccountPriv,
		ConfirmTimeout:        defaultConfirmTimeout,
	})
	if err != nil {
		logger.Fatalf("failed to create escrowman: %v", err)
		return nil, err
	}
	logger.WithFields(logger.Fields{
		"address":     myEscrowman.Account().Hex(),
		"usdcBalance": myEscrowman.UsdcBalanceOf(ctx, myEscrowman.Account()).String(),
	}).Info("resolver eth account")

	// XRPL side: payment client
	issuer := rsc.XrplIssuerAddr
	if issuer == "" {
		issuer = defaultXrplIssuer
	}
	currency := rsc.XrplCurrency
	if currency == "" {
		currency = defaultXrplCurrency
	}
	myXrplman, err := xrplman.NewXrplman(&xrplman.Config{
		WsURL:         rsc.XrplWsUrl,
		Address:       rsc.XrplAccountAddr,
		Secret:        rsc.XrplAccountSeed,
		IssuerAddress: issuer,
		Currency:      currency,
	})
	if err != nil {
		logger.Fatalf("failed to create xrplman: %v", err)
		return nil, err
	}
	logger.WithField("address", myXrplman.Account()).Info("resolver xrpl account")

	// registry + optional sqlite persistence
	myRegistry := state.NewRegistry()
	var mySwapDb *state.SwapDB
	if rsc.DbFilePath != "" {
		sqldb, err := sql.Open("sqlite3", rsc.DbFilePath)
		if err != nil {
			logger.Fatalf("failed to open db file: %v", err)
			return nil, err
		}
		mySwapDb, err = state.NewSwapDB(sqldb)
		if err != nil {
			logger.Fatalf("failed to create swap db: %v", err)
			return nil, err
		}
	}

	minAmount, err := strconv.ParseInt(rsc.MinAmount, 10, 64)
	if err != nil {
		logger.Fatalf("bad MIN_AMOUNT %q: %v", rsc.MinAmount, err)
		return nil, err
	}
	maxAmount, err := strconv.ParseInt(rsc.MaxAmount, 10, 64)
	if err != nil {
		logger.Fatalf("bad MAX_AMOUNT %q: %v", rsc.MaxAmount, err)
		return nil, err
	}

	myResolver := resolver.NewResolver(&resolver.Config{
		MinAmount:        minAmount,
		MaxAmount:        maxAmount,
		ConfirmBuffer:    defaultConfirmBuffer,
		AckTimeout:       defaultAckTimeout,
		DemoAutoApprove:  rsc.DemoAutoApprove == "true",
		DemoApproveDelay: defaultApproveDelay,
		UsdcToken:        ethcommon.HexToAddress(rsc.UsdcContractAddr),
		XrplCurrency:     currency,
		XrplIssuer:       issuer,
	}, myEscrowman, myXrplman, myRegistry, mySwapDb)

	// bring back swaps persisted before the last shutdown
	if _, err := myResolver.LoadPersisted(); err != nil {
		logger.Fatalf("failed to restore swaps from db: %v", err)
		return nil, err
	}

	myReporter := reporter.NewHttpReporter(rsc.HttpIp, rsc.HttpPort, myResolver)

	// Important: turn on the http reporter!
	wg.Add(1)
	go func() {
		defer wg.Done()
		myReporter.Run()
	}()

	return &ResolverServer{
		MyEscrowman: myEscrowman,
		MyXrplman:   myXrplman,
		MyRegistry:  myRegistry,
		MySwapDb:    mySwapDb,
		MyResolver:  myResolver,
		MyReporter:  myReporter,
	}, nil
}

func StartResolverServerAndWait(rsc *ResolverServerConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel() // defense programing

	// Set up a signal channel to listen for Ctrl-C (SIGINT) or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Launch a new goroutine to handle the signal
	go func() {
		sig := <-sigCh
		fmt.Printf("Received signal: %v, cancelling context...\n", sig)
		cancel()
	}()

	var wg sync.WaitGroup

	_, err := NewResolverServer(rsc, ctx, &wg)
	if err != nil {
		logger.Fatalf("failed to create resolver server: %v", err)
		return
	}

	// wait for all routines to finish (which is forever)
	wg.Wait()
}
