package name

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/naming"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// RotateCmd generates a fresh signing keyset and rotates its public key
// into the name record, under the same optimistic concurrency rules as
// UpdateCmd. The new keyset is written to NewKeysFile, which must not exist
// yet so that a working credential is never overwritten.
type RotateCmd struct {
	Server      string
	Name        string
	KeysFile    string
	NewKeysFile string
	ValidFrom   int64
}

func (c RotateCmd) Validate() error {
	if err := cmds.ValidateName(c.Name); err != nil {
		return err
	}
	if c.KeysFile == "" {
		return errors.New("updating keys file must be set")
	}
	if c.NewKeysFile == "" {
		return errors.New("new signing keys file must be set")
	}
	return nil
}

func (c RotateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	updater := try.To1(newUpdater(c.Server, c.KeysFile))

	newHandle := try.To1(naming.GenerateKeys(c.NewKeysFile))
	newPub := try.To1(naming.PublicKeyBytes(newHandle))

	validFrom := c.ValidFrom
	if validFrom == 0 {
		validFrom = time.Now().Unix()
	}

	ctx, cancel := context.WithTimeout(context.Background(), naming.HTTPReqTimeout)
	defer cancel()

	info := try.To1(updater.Update(ctx, c.Name,
		naming.SetSigningKey(newPub, validFrom)))
	cmds.Fprintln(w, "new signing keys:", c.NewKeysFile)
	printInfo(w, info)
	return nil, nil
}
