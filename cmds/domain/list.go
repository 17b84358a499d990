package domain

import (
	"context"
	"io"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/node"
	"github.com/MoeraOrg/moera-tools/utils"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ListCmd lists all domains of the node.
type ListCmd struct {
	Cmd
}

func (c ListCmd) Validate() error {
	return c.Cmd.Validate()
}

func (c ListCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	caller := c.newCaller()
	try.To(c.rootAdminAuth(caller))

	ctx, cancel := context.WithTimeout(context.Background(), node.HTTPReqTimeout)
	defer cancel()

	domains := try.To1(caller.Domains(ctx))
	for _, domain := range domains {
		cmds.Fprintf(w, "%s\t%s\n", domain.Name, utils.TimestampToString(domain.CreatedAt))
	}
	return nil, nil
}
