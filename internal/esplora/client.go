package esplora

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/safe"
)

const maxResponseSize = 32 << 20

// Config configures the HTTP transport of a Client.
type Config struct {
	BaseURL string
	// Timeout bounds every request; zero disables it.
	Timeout time.Duration
	// Proxy is an optional proxy URL, e.g. socks5://127.0.0.1:9050.
	Proxy string
	// RequestsPerSecond paces outgoing requests; zero disables pacing.
	RequestsPerSecond int
}

// Client talks to an Esplora REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	rl      ratelimit.Limiter
	metrics RequestMetrics
}

// NewClient constructs a Client from cfg.
func NewClient(cfg Config, metrics RequestMetrics) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q not supported", ErrInvalidBaseURL, base.Scheme)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidBaseURL)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		proxy, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: cfg.Timeout},
		rl:      rl,
		metrics: metrics,
	}, nil
}

// ScriptHashTxs returns one page of the script's history. With lastSeen nil the page holds
// mempool transactions followed by up to 25 confirmed ones; otherwise it holds the next
// confirmed transactions after lastSeen.
func (c *Client) ScriptHashTxs(ctx context.Context, script model.Script, lastSeen *chainhash.Hash) ([]*model.TxRecord, error) {
	path := "/scripthash/" + script.Hash() + "/txs"
	if lastSeen != nil {
		path += "/chain/" + lastSeen.String()
	}

	var txs []Tx
	if err := c.getJSON(ctx, "scripthash_txs", path, &txs); err != nil {
		return nil, err
	}

	records := make([]*model.TxRecord, 0, len(txs))
	for _, tx := range txs {
		record, err := tx.Record()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Tx returns the transaction with the given id, or nil if the service does not know it.
func (c *Client) Tx(ctx context.Context, txid chainhash.Hash) (*model.TxRecord, error) {
	var tx Tx
	if err := c.getJSON(ctx, "tx", "/tx/"+txid.String(), &tx); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return tx.Record()
}

// Height returns the height of the chain tip.
func (c *Client) Height(ctx context.Context) (uint32, error) {
	body, err := c.do(ctx, "tip_height", http.MethodGet, "/blocks/tip/height", nil)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: tip height: %v", ErrInvalidResponse, err)
	}
	height, err := safe.Uint32(parsed)
	if err != nil {
		return 0, fmt.Errorf("%w: tip height: %v", ErrInvalidResponse, err)
	}
	return height, nil
}

// BlockHash returns the hash of the block at height in the best chain.
func (c *Client) BlockHash(ctx context.Context, height uint32) (*chainhash.Hash, error) {
	body, err := c.do(ctx, "block_hash", http.MethodGet, "/block-height/"+strconv.FormatUint(uint64(height), 10), nil)
	if err != nil {
		return nil, err
	}
	hash, err := chainhash.NewHashFromStr(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: block hash: %v", ErrInvalidResponse, err)
	}
	return hash, nil
}

// FeeEstimates returns fee rates in sat/vB keyed by confirmation target in blocks.
func (c *Client) FeeEstimates(ctx context.Context) (map[uint16]float64, error) {
	var raw map[string]float64
	if err := c.getJSON(ctx, "fee_estimates", "/fee-estimates", &raw); err != nil {
		return nil, err
	}
	estimates := make(map[uint16]float64, len(raw))
	for target, rate := range raw {
		blocks, err := strconv.ParseUint(target, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: fee target %q: %v", ErrInvalidResponse, target, err)
		}
		estimates[uint16(blocks)] = rate
	}
	return estimates, nil
}

// Broadcast submits a serialized transaction and returns the txid reported by the service.
func (c *Client) Broadcast(ctx context.Context, tx *wire.MsgTx) (*chainhash.Hash, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize tx: %w", err)
	}
	body, err := c.do(ctx, "broadcast", http.MethodPost, "/tx", strings.NewReader(hex.EncodeToString(buf.Bytes())))
	if err != nil {
		return nil, err
	}
	txid, err := chainhash.NewHashFromStr(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: broadcast txid: %v", ErrInvalidResponse, err)
	}
	return txid, nil
}

func (c *Client) getJSON(ctx context.Context, operation, path string, v any) error {
	body, err := c.do(ctx, operation, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidResponse, operation, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, payload io.Reader) (body []byte, err error) {
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.Observe(operation, err, started)
		}
	}()

	c.rl.Take()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "text/plain")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", operation, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}
