package domain

import (
	"context"
	"io"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/config"
	"github.com/MoeraOrg/moera-tools/node"
	"github.com/MoeraOrg/moera-tools/utils"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// GetCmd shows the information about one domain. Without an explicit domain
// name the node host's own domain is shown.
type GetCmd struct {
	Cmd
	Domain string
}

func (c GetCmd) Validate() error {
	return c.Cmd.Validate()
}

func (c GetCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	caller := c.newCaller()

	domainName := c.Domain
	if domainName == "" {
		domainName = config.Hostname(caller.Root())
	}

	ctx, cancel := context.WithTimeout(context.Background(), node.HTTPReqTimeout)
	defer cancel()

	domain := try.To1(caller.Domain(ctx, domainName))
	printDomain(w, domain)
	return nil, nil
}

func printDomain(w io.Writer, domain *node.DomainInfo) {
	cmds.Fprintf(w, "node ID:\t%s\n", domain.NodeID)
	cmds.Fprintf(w, "domain name:\t%s\n", domain.Name)
	cmds.Fprintf(w, "created at:\t%s\n", utils.TimestampToString(domain.CreatedAt))
}
