package naming

import (
	"bytes"
	"encoding/json"

	"github.com/MoeraOrg/moera-tools/utils"
	"github.com/mr-tron/base58"
)

// Timestamp is a Unix time in seconds, as everywhere in Moera APIs.
type Timestamp = utils.Timestamp

// OperationStatus is the server-side state of a submitted put operation.
type OperationStatus string

const (
	OperationWaiting   OperationStatus = "WAITING"
	OperationAdded     OperationStatus = "ADDED"
	OperationStarted   OperationStatus = "STARTED"
	OperationSucceeded OperationStatus = "SUCCEEDED"
	OperationFailed    OperationStatus = "FAILED"
	OperationUnknown   OperationStatus = "UNKNOWN"
)

// Terminal tells if the operation will not change its state anymore.
func (s OperationStatus) Terminal() bool {
	return s == OperationSucceeded || s == OperationFailed || s == OperationUnknown
}

var jsonNull = []byte("null")

// Bytes is an opaque binary blob that travels base64-encoded in JSON.
// Digests and signatures use it.
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return jsonNull, nil
	}
	return json.Marshal(utils.EncodeB64(b))
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*b = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := utils.DecodeB64(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// KeyBytes is an opaque public key blob that travels base58-encoded in JSON.
type KeyBytes []byte

func (k KeyBytes) MarshalJSON() ([]byte, error) {
	if k == nil {
		return jsonNull, nil
	}
	return json.Marshal(base58.Encode(k))
}

func (k *KeyBytes) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*k = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := base58.Decode(s)
	if err != nil {
		return err
	}
	*k = decoded
	return nil
}

// RegisteredNameInfo is a point-in-time snapshot of a naming service record.
// Generation grows by exactly one on every successful update; Digest is the
// optimistic concurrency token every update must present as a precondition.
type RegisteredNameInfo struct {
	Name        string    `json:"name"`
	Generation  int       `json:"generation"`
	UpdatingKey KeyBytes  `json:"updatingKey"`
	NodeURI     string    `json:"nodeUri"`
	SigningKey  KeyBytes  `json:"signingKey,omitempty"`
	ValidFrom   Timestamp `json:"validFrom,omitempty"`
	Digest      Bytes     `json:"digest"`
}

// OperationStatusInfo describes the progress of an asynchronous put call.
type OperationStatusInfo struct {
	OperationID  string          `json:"operationId"`
	Status       OperationStatus `json:"status"`
	Added        Timestamp       `json:"added,omitempty"`
	Completed    Timestamp       `json:"completed,omitempty"`
	ErrorCode    string          `json:"errorCode,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	Generation   int             `json:"generation,omitempty"`
}
