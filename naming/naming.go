// Package naming is a client of the Moera naming server. It resolves
// registered names and performs generation-gated record updates protected by
// optimistic concurrency. The package never retries a failed update on its
// own; the operator decides.
package naming

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

const (
	// MainServer is the production Moera naming server endpoint.
	MainServer = "https://naming.moera.org/moera-naming"

	// DevServer is the development naming server endpoint.
	DevServer = "https://naming-dev.moera.org/moera-naming"
)

// HTTPReqTimeout bounds a single naming server call.
const HTTPReqTimeout = 1 * time.Minute

// Client talks JSON-RPC 2.0 to a naming server. The zero value is not
// usable, construct with NewClient.
type Client struct {
	server string
	http   *http.Client
}

var _ API = (*Client)(nil)

// NewClient returns a client of the given naming server endpoint. An empty
// server selects MainServer.
func NewClient(server string) *Client {
	if server == "" {
		server = MainServer
	}
	return &Client{
		server: server,
		http:   &http.Client{},
	}
}

// Server returns the endpoint the client talks to.
func (c *Client) Server() string {
	return c.server
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		ErrorCode string `json:"errorCode"`
	} `json:"data"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// call invokes a naming server method and decodes the result into out when
// out is non-nil and the result is not null. Transport failures come back as
// *ConnectionError, server-reported failures as *Error.
func (c *Client) call(ctx context.Context, method string, out any, params ...any) (err error) {
	defer err2.Handle(&err, "naming call %s", method)

	if params == nil {
		params = []any{}
	}
	reqBody := try.To1(json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	}))

	request := try.To1(http.NewRequestWithContext(
		ctx, http.MethodPost, c.server, bytes.NewReader(reqBody)))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Close = true // deferred response.Body.Close isn't always enough

	response, err := c.http.Do(request)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer func() {
		closeErr := response.Body.Close()
		if closeErr != nil {
			glog.Warningln("body.Close: ", closeErr)
		}
	}()

	data := try.To1(io.ReadAll(response.Body))

	var rsp rpcResponse
	if jsonErr := json.Unmarshal(data, &rsp); jsonErr != nil {
		if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
			return &ConnectionError{Err: fmt.Errorf("%s", response.Status)}
		}
		return &ConnectionError{Err: fmt.Errorf("invalid server response: %w", jsonErr)}
	}
	if rsp.Error != nil {
		return &Error{Code: rsp.Error.Data.ErrorCode, Message: rsp.Error.Message}
	}
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return &ConnectionError{Err: fmt.Errorf("%s", response.Status)}
	}

	if glog.V(3) {
		glog.Infof("naming %s <- %s", method, string(rsp.Result))
	}

	if out != nil && !bytes.Equal(rsp.Result, jsonNull) && len(rsp.Result) > 0 {
		try.To(json.Unmarshal(rsp.Result, out))
	}
	return nil
}

// GetCurrent returns the latest record of the name, or nil when the server
// has none visible.
func (c *Client) GetCurrent(ctx context.Context, name string) (info *RegisteredNameInfo, err error) {
	err = c.call(ctx, "getCurrent", &info, name)
	return
}

// GetPast returns the record the name had at the given generation, or nil.
func (c *Client) GetPast(ctx context.Context, name string, generation int) (info *RegisteredNameInfo, err error) {
	err = c.call(ctx, "getPast", &info, name, generation)
	return
}

// IsFree tells if the name can still be registered.
func (c *Client) IsFree(ctx context.Context, name string) (free bool, err error) {
	err = c.call(ctx, "isFree", &free, name)
	return
}

// GetSimilar returns a close match for a possibly misspelled name, or nil.
func (c *Client) GetSimilar(ctx context.Context, name string) (info *RegisteredNameInfo, err error) {
	err = c.call(ctx, "getSimilar", &info, name)
	return
}

// GetAll pages through all records registered at the given moment.
func (c *Client) GetAll(ctx context.Context, at Timestamp, page, size int) (infos []RegisteredNameInfo, err error) {
	err = c.call(ctx, "getAll", &infos, at, page, size)
	return
}

// GetStatus reports the progress of a put operation, or nil when the
// operation is unknown to the server.
func (c *Client) GetStatus(ctx context.Context, operationID string) (info *OperationStatusInfo, err error) {
	err = c.call(ctx, "getStatus", &info, operationID)
	return
}

// Put submits a signed record update. Parameters are positional, in the
// order the naming server expects them. An unset validity start travels as
// null, not as the epoch.
func (c *Client) Put(ctx context.Context, call PutCall) (operationID string, err error) {
	var validFrom any
	if call.ValidFrom != 0 {
		validFrom = call.ValidFrom
	}
	err = c.call(ctx, "put", &operationID,
		call.Name, call.Generation, call.UpdatingKey, call.NodeURI,
		call.SigningKey, validFrom, call.PreviousDigest, call.Signature)
	return
}
