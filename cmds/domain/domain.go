// Package domain implements the moctl domain management commands.
package domain

import (
	"errors"
	"net/url"

	"github.com/MoeraOrg/moera-tools/node"
)

// Cmd is the base of all domain commands: the target node and the admin
// credentials resolved from flags and configuration.
type Cmd struct {
	Host   string
	Token  string
	Secret string
}

func (c Cmd) Validate() error {
	if c.Host == "" {
		return errors.New("host is not set")
	}
	u, err := url.Parse(c.Host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("host must be an absolute URL")
	}
	return nil
}

func (c Cmd) newCaller() *node.Caller {
	return node.NewCaller(c.Host)
}

// rootAdminAuth sets up root secret authentication; listing and deleting
// domains is allowed to the root admin only.
func (c Cmd) rootAdminAuth(caller *node.Caller) error {
	if c.Secret == "" {
		return errors.New("root admin secret (-S, --root-secret) should be set")
	}
	caller.RootSecret(c.Secret)
	caller.AuthRootAdmin()
	return nil
}

// adminAuth prefers an admin token and falls back to the root secret.
func (c Cmd) adminAuth(caller *node.Caller) error {
	if c.Token != "" {
		caller.Token(c.Token)
		caller.AuthAdmin()
		return nil
	}
	if c.Secret != "" {
		caller.RootSecret(c.Secret)
		caller.AuthRootAdmin()
		return nil
	}
	return errors.New("admin token (-T, --token) or root admin secret (-S, --root-secret) should be set")
}
