package name

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/naming"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ResolveCmd queries the naming service. The plain form resolves the
// current record of a name; a _N suffix selects the historical record at
// generation N; Similar and List switch to the similar-name and full-listing
// queries.
type ResolveCmd struct {
	Server  string
	Name    string
	Similar bool
	List    bool
	At      int64
	Page    int
	Size    int

	name       string
	generation int
	past       bool
}

func (c *ResolveCmd) Validate() error {
	if c.List {
		if c.Page < 0 || c.Size <= 0 {
			return fmt.Errorf("invalid listing page %d/size %d", c.Page, c.Size)
		}
		return nil
	}

	c.name = c.Name
	if pos := strings.LastIndex(c.Name, "_"); pos >= 0 {
		gen, err := strconv.Atoi(c.Name[pos+1:])
		if err != nil {
			return fmt.Errorf("invalid generation: %q", c.Name[pos+1:])
		}
		c.name = c.Name[:pos]
		c.generation = gen
		c.past = true
	}
	return cmds.ValidateName(c.name)
}

func (c *ResolveCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	client := naming.NewClient(c.Server)
	ctx, cancel := context.WithTimeout(context.Background(), naming.HTTPReqTimeout)
	defer cancel()

	switch {
	case c.List:
		at := c.At
		if at == 0 {
			at = time.Now().Unix()
		}
		infos := try.To1(client.GetAll(ctx, at, c.Page, c.Size))
		for i := range infos {
			printInfo(w, &infos[i])
		}
		return nil, nil

	case c.Similar:
		info := try.To1(client.GetSimilar(ctx, c.name))
		if info == nil {
			return nil, naming.ErrNotFound
		}
		printInfo(w, info)
		return nil, nil

	case c.past:
		info := try.To1(client.GetPast(ctx, c.name, c.generation))
		if info == nil {
			return nil, naming.ErrNotFound
		}
		printInfo(w, info)
		return nil, nil
	}

	res := try.To1(naming.NewResolver(client).Resolve(ctx, c.name))
	switch res.State {
	case naming.NotFound:
		cmds.Fprintln(w, "not found")
		return nil, naming.ErrNotFound
	case naming.Pending:
		cmds.Fprintln(w, "pending")
		return nil, naming.ErrPending
	}
	printInfo(w, res.Info)
	return nil, nil
}

func printInfo(w io.Writer, info *naming.RegisteredNameInfo) {
	cmds.Fprintf(w, "%s_%d\t%s\n", info.Name, info.Generation, info.NodeURI)
}
