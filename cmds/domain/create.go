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

// CreateCmd creates a domain. A root secret is used when available; nodes
// that allow open registration accept the call without it.
type CreateCmd struct {
	Cmd
	Domain string
}

func (c CreateCmd) Validate() error {
	if err := c.Cmd.Validate(); err != nil {
		return err
	}
	if c.Domain == "" {
		return errors.New("domain name cannot be empty")
	}
	return nil
}

func (c CreateCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	caller := c.newCaller()
	if c.Secret != "" {
		try.To(c.rootAdminAuth(caller))
	}

	ctx, cancel := context.WithTimeout(context.Background(), node.HTTPReqTimeout)
	defer cancel()

	domain := try.To1(caller.CreateDomain(ctx, node.DomainAttributes{Name: c.Domain}))
	printDomain(w, domain)
	return nil, nil
}
