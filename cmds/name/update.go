package name

import (
	"context"
	"errors"
	"io"
	"net/url"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/naming"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// UpdateCmd rebinds a registered name to a new node address. The update is
// gated on the record state observed at execution time; when another
// administrator gets in between, the command fails with a conflict and is
// NOT retried.
type UpdateCmd struct {
	Server   string
	Name     string
	NodeURI  string
	KeysFile string
}

func (c UpdateCmd) Validate() error {
	if err := cmds.ValidateName(c.Name); err != nil {
		return err
	}
	u, err := url.Parse(c.NodeURI)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("node URI must be an absolute URL")
	}
	if c.KeysFile == "" {
		return errors.New("updating keys file must be set")
	}
	return nil
}

func (c UpdateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	updater := try.To1(newUpdater(c.Server, c.KeysFile))
	ctx, cancel := context.WithTimeout(context.Background(), naming.HTTPReqTimeout)
	defer cancel()

	info := try.To1(updater.Update(ctx, c.Name, naming.SetNodeURI(c.NodeURI)))
	printInfo(w, info)
	return nil, nil
}

// newUpdater wires the operator's updating keyset to a naming server
// updater.
func newUpdater(server, keysFile string) (u *naming.Updater, err error) {
	defer err2.Handle(&err)

	handle := try.To1(naming.LoadKeys(keysFile))
	signer := try.To1(naming.NewSigner(handle))
	pub := try.To1(naming.PublicKeyBytes(handle))
	return naming.NewUpdater(naming.NewClient(server), signer, pub), nil
}
