package domain

import (
	"context"
	"errors"
	"io"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/node"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// DeleteCmd deletes a domain from the node.
type DeleteCmd struct {
	Cmd
	Domain string
}

func (c DeleteCmd) Validate() error {
	if err := c.Cmd.Validate(); err != nil {
		return err
	}
	if c.Domain == "" {
		return errors.New("domain name cannot be empty")
	}
	return nil
}

func (c DeleteCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	caller := c.newCaller()
	try.To(c.rootAdminAuth(caller))

	ctx, cancel := context.WithTimeout(context.Background(), node.HTTPReqTimeout)
	defer cancel()

	try.To(caller.DeleteDomain(ctx, c.Domain))
	cmds.Fprintln(w, "deleted")
	return nil, nil
}
