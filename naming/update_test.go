package naming_test

import (
	"context"
	"testing"

	"github.com/MoeraOrg/moera-tools/naming"
	"github.com/MoeraOrg/moera-tools/naming/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUpdater(t *testing.T, api naming.API) *naming.Updater {
	t.Helper()
	handle, err := keyset.NewHandle(signature.ED25519KeyTemplate())
	require.NoError(t, err)
	signer, err := naming.NewSigner(handle)
	require.NoError(t, err)
	pub, err := naming.PublicKeyBytes(handle)
	require.NoError(t, err)
	return naming.NewUpdater(api, signer, pub)
}

func observedAlice() *naming.RegisteredNameInfo {
	return &naming.RegisteredNameInfo{
		Name:        "alice",
		Generation:  3,
		UpdatingKey: naming.KeyBytes{1, 2, 3},
		NodeURI:     "https://node1.example",
		Digest:      naming.Bytes{0xd, 0xe, 0xa, 0xd},
	}
}

func TestUpdateSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	updated := &naming.RegisteredNameInfo{
		Name:       "alice",
		Generation: 4,
		NodeURI:    "https://node2.example",
		Digest:     naming.Bytes{0xbe, 0xef},
	}

	gomock.InOrder(
		api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(observedAlice(), nil),
		api.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, call naming.PutCall) (string, error) {
				// preconditions must be the observed generation and digest
				assert.Equal(t, 3, call.Generation)
				assert.Equal(t, naming.Bytes{0xd, 0xe, 0xa, 0xd}, call.PreviousDigest)
				assert.Equal(t, "https://node2.example", call.NodeURI)
				assert.NotEmpty(t, call.Signature)
				assert.NotEmpty(t, call.UpdatingKey)
				return "op-1", nil
			}),
		api.EXPECT().GetStatus(gomock.Any(), "op-1").Return(&naming.OperationStatusInfo{
			OperationID: "op-1",
			Status:      naming.OperationSucceeded,
			Generation:  4,
		}, nil),
		api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(updated, nil),
	)

	info, err := newTestUpdater(t, api).Update(context.Background(), "alice",
		naming.SetNodeURI("https://node2.example"))
	require.NoError(t, err)
	assert.Equal(t, 4, info.Generation)
	assert.Equal(t, "https://node2.example", info.NodeURI)
}

func TestUpdateStaleGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// another administrator won the race; the put must not be resubmitted,
	// gomock fails the test on any second Put call
	api := mocks.NewMockAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(observedAlice(), nil),
		api.EXPECT().Put(gomock.Any(), gomock.Any()).Return("op-2", nil).Times(1),
		api.EXPECT().GetStatus(gomock.Any(), "op-2").Return(&naming.OperationStatusInfo{
			OperationID: "op-2",
			Status:      naming.OperationFailed,
			ErrorCode:   "generation.mismatch",
		}, nil),
	)

	_, err := newTestUpdater(t, api).Update(context.Background(), "alice",
		naming.SetNodeURI("https://node2.example"))
	var conflict *naming.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, naming.StaleGeneration, conflict.Reason)
}

func TestUpdateRejectedSynchronously(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(observedAlice(), nil),
		api.EXPECT().Put(gomock.Any(), gomock.Any()).Return("",
			&naming.Error{Code: "previous-digest.mismatch", Message: "digest does not match"}),
	)

	_, err := newTestUpdater(t, api).Update(context.Background(), "alice",
		naming.SetNodeURI("https://node2.example"))
	var conflict *naming.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, naming.StaleGeneration, conflict.Reason)
}

func TestUpdateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// updating an unregistered name is refused before anything is sent
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(nil, nil)
	api.EXPECT().IsFree(gomock.Any(), "alice").Return(true, nil)

	_, err := newTestUpdater(t, api).Update(context.Background(), "alice",
		naming.SetNodeURI("https://node2.example"))
	assert.ErrorIs(t, err, naming.ErrNotFound)
}

func TestUpdateNotPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().GetCurrent(gomock.Any(), "bob").Return(nil, nil)
	api.EXPECT().IsFree(gomock.Any(), "bob").Return(false, nil)

	_, err := newTestUpdater(t, api).Update(context.Background(), "bob",
		naming.SetNodeURI("https://node2.example"))
	var conflict *naming.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, naming.NotPropagated, conflict.Reason)
}

func TestUpdatePollsUntilTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	updated := observedAlice()
	updated.Generation = 4

	gomock.InOrder(
		api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(observedAlice(), nil),
		api.EXPECT().Put(gomock.Any(), gomock.Any()).Return("op-3", nil),
		api.EXPECT().GetStatus(gomock.Any(), "op-3").Return(&naming.OperationStatusInfo{
			OperationID: "op-3", Status: naming.OperationStarted}, nil),
		api.EXPECT().GetStatus(gomock.Any(), "op-3").Return(&naming.OperationStatusInfo{
			OperationID: "op-3", Status: naming.OperationSucceeded, Generation: 4}, nil),
		api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(updated, nil),
	)

	info, err := newTestUpdater(t, api).Update(context.Background(), "alice",
		naming.SetNodeURI("https://node2.example"))
	require.NoError(t, err)
	assert.Equal(t, 4, info.Generation)
}

func TestUpdateInterruptedWhilePolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	// the operator interrupts the run while the operation is still in
	// flight; the committed state is indeterminate, so the outcome must be
	// a connection error and the put must not be resubmitted
	api := mocks.NewMockAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(observedAlice(), nil),
		api.EXPECT().Put(gomock.Any(), gomock.Any()).Return("op-5", nil).Times(1),
		api.EXPECT().GetStatus(gomock.Any(), "op-5").DoAndReturn(
			func(context.Context, string) (*naming.OperationStatusInfo, error) {
				cancel()
				return &naming.OperationStatusInfo{
					OperationID: "op-5", Status: naming.OperationStarted}, nil
			}),
	)

	_, err := newTestUpdater(t, api).Update(ctx, "alice",
		naming.SetNodeURI("https://node2.example"))
	var connErr *naming.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.ErrorIs(t, err, context.Canceled)
}

// Repeating an update without re-resolving is expected to fail: the
// generation has already advanced, so the second call carries stale
// preconditions. This is tested at the server contract level in
// TestUpdateStaleGeneration; here we only pin that the updater re-reads the
// record on every call instead of reusing a cached digest.
func TestUpdateReresolvesEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().GetCurrent(gomock.Any(), "alice").Return(nil, nil).Times(2)
	api.EXPECT().IsFree(gomock.Any(), "alice").Return(true, nil).Times(2)

	updater := newTestUpdater(t, api)
	_, err := updater.Update(context.Background(), "alice", naming.SetNodeURI("x"))
	assert.ErrorIs(t, err, naming.ErrNotFound)
	_, err = updater.Update(context.Background(), "alice", naming.SetNodeURI("x"))
	assert.ErrorIs(t, err, naming.ErrNotFound)
}
