package naming

import "context"

//go:generate mockgen -source=api.go -destination=mocks/api.go -package=mocks

// API is the set of naming server calls the tools use. Client implements it
// over JSON-RPC; tests substitute a mock.
type API interface {
	// GetCurrent returns the latest record of the name, or nil when the
	// server has none visible.
	GetCurrent(ctx context.Context, name string) (*RegisteredNameInfo, error)

	// GetPast returns the historical record of the name at the given
	// generation, or nil.
	GetPast(ctx context.Context, name string, generation int) (*RegisteredNameInfo, error)

	// IsFree tells if the name can still be registered. A name without a
	// visible record that is not free has a registration in flight.
	IsFree(ctx context.Context, name string) (bool, error)

	// GetSimilar returns a close match for a possibly misspelled name.
	GetSimilar(ctx context.Context, name string) (*RegisteredNameInfo, error)

	// GetAll pages through all records registered at the given moment.
	GetAll(ctx context.Context, at Timestamp, page int, size int) ([]RegisteredNameInfo, error)

	// GetStatus reports the progress of a put operation.
	GetStatus(ctx context.Context, operationID string) (*OperationStatusInfo, error)

	// Put submits a signed record update and returns the operation ID.
	Put(ctx context.Context, call PutCall) (string, error)
}

// PutCall carries the new desired state of a record together with the
// observed generation and digest that guard against concurrent writers.
type PutCall struct {
	Name           string
	Generation     int
	UpdatingKey    KeyBytes
	NodeURI        string
	SigningKey     KeyBytes
	ValidFrom      Timestamp
	PreviousDigest Bytes
	Signature      Bytes
}
