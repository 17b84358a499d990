package node

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MoeraOrg/moera-tools/utils"
)

// DomainInfo describes a domain served by the node.
type DomainInfo struct {
	Name      string          `json:"name"`
	NodeID    string          `json:"nodeId"`
	CreatedAt utils.Timestamp `json:"createdAt"`
}

// DomainAttributes carries the mutable attributes of a domain.
type DomainAttributes struct {
	Name   string `json:"name,omitempty"`
	NodeID string `json:"nodeId,omitempty"`
}

// Domains lists all domains of the node. Requires root admin authentication.
func (c *Caller) Domains(ctx context.Context) (domains []DomainInfo, err error) {
	err = c.call(ctx, http.MethodGet, "/domains", nil, nil, &domains)
	return
}

// Domain returns the information about a single domain.
func (c *Caller) Domain(ctx context.Context, name string) (domain *DomainInfo, err error) {
	err = c.call(ctx, http.MethodGet, "/domains/"+url.PathEscape(name), nil, nil, &domain)
	return
}

// CreateDomain creates a domain with the given attributes.
func (c *Caller) CreateDomain(ctx context.Context, attrs DomainAttributes) (domain *DomainInfo, err error) {
	err = c.call(ctx, http.MethodPost, "/domains", nil, attrs, &domain)
	return
}

// DeleteDomain deletes the domain. Requires root admin authentication.
func (c *Caller) DeleteDomain(ctx context.Context, name string) error {
	return c.call(ctx, http.MethodDelete, "/domains/"+url.PathEscape(name), nil, nil, nil)
}
