package node_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MoeraOrg/moera-tools/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsAuthHeader(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"moera.blog","nodeId":"n1","createdAt":1700000000}]`))
	}))
	defer srv.Close()

	caller := node.NewCaller(srv.URL + "/")
	caller.RootSecret("s3cret")
	caller.AuthRootAdmin()

	domains, err := caller.Domains(context.Background())
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, "moera.blog", domains[0].Name)
	assert.Equal(t, "Bearer secret:s3cret", gotAuth)
	assert.Equal(t, "/api/domains", gotPath)
}

func TestDomainTokenAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token:t0ken", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/domains/moera.blog", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"moera.blog","nodeId":"n1","createdAt":1700000000}`))
	}))
	defer srv.Close()

	caller := node.NewCaller(srv.URL)
	caller.Token("t0ken")
	caller.AuthAdmin()

	domain, err := caller.Domain(context.Background(), "moera.blog")
	require.NoError(t, err)
	assert.Equal(t, "n1", domain.NodeID)
}

func TestCreateDomain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"new.blog","nodeId":"n2","createdAt":1700000001}`))
	}))
	defer srv.Close()

	domain, err := node.NewCaller(srv.URL).CreateDomain(context.Background(),
		node.DomainAttributes{Name: "new.blog"})
	require.NoError(t, err)
	assert.Equal(t, "new.blog", domain.Name)
}

func TestNodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorCode":"domain.not-found","message":"domain not found"}`))
	}))
	defer srv.Close()

	_, err := node.NewCaller(srv.URL).Domain(context.Background(), "nope")
	var nodeErr *node.Error
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "domain.not-found", nodeErr.ErrorCode)
}

func TestConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := node.NewCaller(srv.URL).DeleteDomain(context.Background(), "x")
	var connErr *node.ConnectionError
	assert.ErrorAs(t, err, &connErr)
}
