// Package getwork talks the bitcoind getwork protocol: it fetches header
// templates with targets and submits solved headers back.
package getwork

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/cpuminer7000/internal/byteorder"
	"github.com/goodnatureofminers/cpuminer7000/internal/model"
)

const methodGetWork = "getwork"

type (
	// RawRequester issues raw JSON-RPC requests; satisfied by
	// btcd's rpcclient.Client.
	RawRequester interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client is a work source backed by a JSON-RPC connection. Each worker
// owns its own Client, so request identifiers and the underlying socket
// are never shared.
type Client struct {
	rpc        RawRequester
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewClient constructs an instrumented getwork client. Fetches are rate
// limited to fetchRPS requests per second; a non-positive value leaves
// them unlimited.
func NewClient(rpc RawRequester, rpcMetrics RPCMetrics, fetchRPS int) *Client {
	limiter := ratelimit.NewUnlimited()
	if fetchRPS > 0 {
		limiter = ratelimit.New(fetchRPS)
	}
	return &Client{
		rpc:        rpc,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

// GetWork fetches one work unit from the work source.
func (c *Client) GetWork() (work model.WorkUnit, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_work", err, started)
	}()

	c.limiter.Take()
	raw, err := c.rpc.RawRequest(methodGetWork, nil)
	if err != nil {
		return model.WorkUnit{}, fmt.Errorf("getwork request: %w", err)
	}
	return parseWorkResponse(raw)
}

// SubmitWork sends a solved header back to the work source and returns
// the upstream acknowledgement.
func (c *Client) SubmitWork(solution string) (accepted bool, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("submit_work", err, started)
	}()

	param, err := json.Marshal(solution)
	if err != nil {
		return false, fmt.Errorf("encode solution: %w", err)
	}
	raw, err := c.rpc.RawRequest(methodGetWork, []json.RawMessage{param})
	if err != nil {
		return false, fmt.Errorf("getwork submit request: %w", err)
	}
	if err := json.Unmarshal(raw, &accepted); err != nil {
		return false, fmt.Errorf("decode submit acknowledgement: %w", err)
	}
	return accepted, nil
}

type workResponse struct {
	Data   string `json:"data"`
	Target string `json:"target"`
}

// parseWorkResponse validates the shape of a getwork result. Content
// (hex validity, byte-order normalization) is validated again when the
// work is prepared for hashing.
func parseWorkResponse(raw json.RawMessage) (model.WorkUnit, error) {
	var resp workResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return model.WorkUnit{}, fmt.Errorf("decode getwork result: %w", err)
	}
	if resp.Data == "" {
		return model.WorkUnit{}, fmt.Errorf("getwork result missing data field")
	}
	if resp.Target == "" {
		return model.WorkUnit{}, fmt.Errorf("getwork result missing target field")
	}
	if len(resp.Data) < model.HeaderLen*2 {
		return model.WorkUnit{}, fmt.Errorf("getwork data is %d hex chars, want at least %d", len(resp.Data), model.HeaderLen*2)
	}
	if len(resp.Data)%(byteorder.WordSize*2) != 0 {
		return model.WorkUnit{}, fmt.Errorf("getwork data length %d is not word aligned", len(resp.Data))
	}
	if len(resp.Target) != targetHexLen {
		return model.WorkUnit{}, fmt.Errorf("getwork target is %d hex chars, want %d", len(resp.Target), targetHexLen)
	}
	return model.WorkUnit{Data: resp.Data, Target: resp.Target}, nil
}

const targetHexLen = 64
