package xrplman

import "time"

type Config struct {
	// WsURL is the websocket URL of the XRPL node, e.g. wss://s.altnet.rippletest.net:51233
	WsURL string

	// Address is the resolver's classic address (the payment sender)
	Address string

	// Secret is the seed the node uses for server-side signing of
	// submitted transactions
	Secret string

	// Issuer/Currency identify the USDC trust line
	IssuerAddress string
	Currency      string

	// RequestTimeout bounds each websocket round trip
	RequestTimeout time.Duration

	// DestinationTag is attached to outgoing payments so the receiver
	// can correlate them (0 = omit)
	DestinationTag uint32
}

const DefaultRequestTimeout = 30 * time.Second

func (cfg *Config) requestTimeout() time.Duration {
	if cfg.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return cfg.RequestTimeout
}
