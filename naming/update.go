package naming

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/tink/go/tink"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Mutation edits the desired new state of a record before it is signed and
// submitted.
type Mutation func(info *RegisteredNameInfo)

// SetNodeURI rebinds the name to a new node address.
func SetNodeURI(uri string) Mutation {
	return func(info *RegisteredNameInfo) {
		info.NodeURI = uri
	}
}

// SetSigningKey rotates the record's signing key. The key becomes effective
// at validFrom.
func SetSigningKey(key []byte, validFrom Timestamp) Mutation {
	return func(info *RegisteredNameInfo) {
		info.SigningKey = key
		info.ValidFrom = validFrom
	}
}

const statusPollInterval = 500 * time.Millisecond

// Updater performs a read-modify-write cycle on a name record. Safety
// against concurrent administrators comes entirely from the observed
// generation and digest submitted as put preconditions; the updater holds no
// state between calls and NEVER resubmits after a conflict or a transport
// failure.
type Updater struct {
	api          API
	resolver     *Resolver
	signer       tink.Signer
	updatingKey  KeyBytes
	pollInterval time.Duration
}

// NewUpdater returns an updater signing put calls with the given signer.
// updatingKey is the public part of the operator's updating keyset and is
// carried in the submitted record so the server can verify future updates.
func NewUpdater(api API, signer tink.Signer, updatingKey []byte) *Updater {
	return &Updater{
		api:          api,
		resolver:     NewResolver(api),
		signer:       signer,
		updatingKey:  updatingKey,
		pollInterval: statusPollInterval,
	}
}

// Update resolves the name, applies the mutations to the observed state,
// signs the result and submits it gated on the observed generation and
// digest. On success the returned record's generation is the observed one
// plus one.
//
// A name that has no record yields ErrNotFound; registration is a separate
// concern. A name whose registration has not propagated yet yields
// *ConflictError, as does a put rejected because another writer got in
// between. Exactly one put is sent per call, whatever the outcome.
func (u *Updater) Update(ctx context.Context, name string, mutations ...Mutation) (info *RegisteredNameInfo, err error) {
	defer err2.Handle(&err, "update %s", name)

	res := try.To1(u.resolver.Resolve(ctx, name))
	switch res.State {
	case NotFound:
		return nil, ErrNotFound
	case Pending:
		return nil, &ConflictError{Name: name, Reason: NotPropagated}
	}
	observed := res.Info

	next := *observed
	if u.updatingKey != nil {
		next.UpdatingKey = u.updatingKey
	}
	for _, mutate := range mutations {
		mutate(&next)
	}

	fingerprint := putCallFingerprint(
		next.Name, observed.Generation, next.UpdatingKey, next.NodeURI,
		next.SigningKey, next.ValidFrom, observed.Digest)
	sig := try.To1(u.signer.Sign(fingerprint))

	operationID, err := u.api.Put(ctx, PutCall{
		Name:           name,
		Generation:     observed.Generation,
		UpdatingKey:    next.UpdatingKey,
		NodeURI:        next.NodeURI,
		SigningKey:     next.SigningKey,
		ValidFrom:      next.ValidFrom,
		PreviousDigest: observed.Digest,
		Signature:      sig,
	})
	if err != nil {
		return nil, asConflict(name, err)
	}

	status := try.To1(u.waitOperation(ctx, operationID))
	switch status.Status {
	case OperationFailed:
		if isConflictCode(status.ErrorCode) {
			return nil, &ConflictError{Name: name, Reason: StaleGeneration}
		}
		return nil, &Error{Code: status.ErrorCode, Message: status.ErrorMessage}
	case OperationUnknown:
		return nil, &Error{Message: fmt.Sprintf("operation %s is in unknown state", operationID)}
	}

	info = try.To1(u.api.GetCurrent(ctx, name))
	if info == nil {
		return nil, fmt.Errorf("record of %q disappeared after update", name)
	}
	if info.Generation != observed.Generation+1 {
		// can happen when yet another writer advanced the record between
		// our commit and this read
		glog.Warningf("name %q is at generation %d, expected %d",
			name, info.Generation, observed.Generation+1)
		return info, nil
	}

	wantDigest := recordDigest(putCallFingerprint(
		info.Name, info.Generation, info.UpdatingKey, info.NodeURI,
		info.SigningKey, info.ValidFrom, observed.Digest))
	if !bytes.Equal(info.Digest, wantDigest) {
		glog.Warningf("digest of %q does not match the submitted state", name)
	}
	return info, nil
}

// asConflict maps server-rejected preconditions to *ConflictError and leaves
// every other error untouched.
func asConflict(name string, err error) error {
	var srvErr *Error
	if errors.As(err, &srvErr) && isConflictCode(srvErr.Code) {
		return &ConflictError{Name: name, Reason: StaleGeneration}
	}
	return err
}

// waitOperation polls the operation status until it reaches a terminal
// state or the context expires. Polling is a read; the put itself is never
// repeated.
func (u *Updater) waitOperation(ctx context.Context, operationID string) (status *OperationStatusInfo, err error) {
	defer err2.Handle(&err)

	for {
		status = try.To1(u.api.GetStatus(ctx, operationID))
		if status == nil {
			return nil, &Error{Message: fmt.Sprintf("operation %s is not known to the server", operationID)}
		}
		if status.Status.Terminal() {
			return status, nil
		}
		glog.V(2).Infof("operation %s: %s", operationID, status.Status)

		select {
		case <-ctx.Done():
			// committed state is indeterminate now, the caller must
			// re-resolve before trying again
			return nil, &ConnectionError{Err: ctx.Err()}
		case <-time.After(u.pollInterval):
		}
	}
}
