// Package node is a client of the admin REST API of a Moera node.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// HTTPReqTimeout bounds a single node API call.
const HTTPReqTimeout = 1 * time.Minute

// AuthMethod selects the credential sent with admin calls.
type AuthMethod int

const (
	AuthNone AuthMethod = iota

	// AuthAdmin authenticates with an admin token.
	AuthAdmin

	// AuthRootAdmin authenticates with the server's root secret.
	AuthRootAdmin
)

// Result is the error structure the node returns for failed calls.
type Result struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// Error is an error reported by the node.
type Error struct {
	Result
}

func (e *Error) Error() string {
	return "node error: " + e.Message + " (" + e.ErrorCode + ")"
}

// ConnectionError is a transient transport failure.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "node connection error: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Caller holds the node address and credentials of an admin session. Set the
// node URL first, then the credential and the auth method.
type Caller struct {
	root       string
	token      string
	rootSecret string
	auth       AuthMethod
	http       *http.Client
}

// NewCaller returns a caller for the node at the given URL.
func NewCaller(nodeURL string) *Caller {
	return &Caller{
		root: strings.TrimSuffix(nodeURL, "/"),
		http: &http.Client{},
	}
}

// Root returns the node root URL.
func (c *Caller) Root() string {
	return c.root
}

// Token stores an admin token for AuthAdmin calls.
func (c *Caller) Token(token string) {
	c.token = token
}

// RootSecret stores the root admin secret for AuthRootAdmin calls.
func (c *Caller) RootSecret(secret string) {
	c.rootSecret = secret
}

// AuthAdmin switches the caller to admin token authentication.
func (c *Caller) AuthAdmin() {
	c.auth = AuthAdmin
}

// AuthRootAdmin switches the caller to root secret authentication.
func (c *Caller) AuthRootAdmin() {
	c.auth = AuthRootAdmin
}

func (c *Caller) bearer() string {
	switch c.auth {
	case AuthAdmin:
		return "Bearer token:" + c.token
	case AuthRootAdmin:
		return "Bearer secret:" + c.rootSecret
	}
	return ""
}

// call performs a REST call against {root}/api{location} and decodes the
// response into out when out is non-nil. Non-2xx responses are returned as
// *Error, transport failures as *ConnectionError.
func (c *Caller) call(ctx context.Context, method, location string,
	params url.Values, body any, out any) (err error) {

	defer err2.Handle(&err, "node call %s %s", method, location)

	callURL := c.root + "/api" + location
	if len(params) > 0 {
		callURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(try.To1(json.Marshal(body)))
	}

	request := try.To1(http.NewRequestWithContext(ctx, method, callURL, reqBody))
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", "application/json")
	if bearer := c.bearer(); bearer != "" {
		request.Header.Set("Authorization", bearer)
	}
	request.Close = true

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

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		result := Result{Message: response.Status}
		_ = json.Unmarshal(data, &result)
		return &Error{Result: result}
	}

	if out != nil {
		try.To(json.Unmarshal(data, out))
	}
	return nil
}
