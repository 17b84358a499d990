package name_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	namecmd "github.com/MoeraOrg/moera-tools/cmds/name"
	"github.com/MoeraOrg/moera-tools/naming"
	"github.com/lainio/err2/assert"
)

// namingServer fakes a naming server with one registered record.
func namingServer(t *testing.T, registered map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var call struct {
			ID     string `json:"id"`
			Method string `json:"method"`
			Params []any  `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			t.Error("decode call:", err)
		}
		name, _ := call.Params[0].(string)
		w.Header().Set("Content-Type", "application/json")
		switch call.Method {
		case "getCurrent":
			if uri, ok := registered[name]; ok {
				_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"` + call.ID + `","result":` +
					`{"name":"` + name + `","generation":3,"nodeUri":"` + uri + `","digest":"3q0="}}`))
				return
			}
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"` + call.ID + `","result":null}`))
		case "isFree":
			free := name != "bob" // bob's registration is in flight
			freeJSON, _ := json.Marshal(free)
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"` + call.ID + `","result":` + string(freeJSON) + `}`))
		default:
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"` + call.ID + `","result":null}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveCmdExec(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	srv := namingServer(t, map[string]string{"alice": "https://node1.example"})

	cmd := namecmd.ResolveCmd{Server: srv.URL, Name: "alice"}
	assert.NoError(cmd.Validate())

	w := &bytes.Buffer{}
	_, err := cmd.Exec(w)
	assert.NoError(err)
	assert.Equal(w.String(), "alice_3\thttps://node1.example\n")
}

func TestResolveCmdNotFound(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	srv := namingServer(t, nil)

	cmd := namecmd.ResolveCmd{Server: srv.URL, Name: "alice"}
	assert.NoError(cmd.Validate())
	_, err := cmd.Exec(nil)
	assert.That(err == naming.ErrNotFound, "want ErrNotFound, got %v", err)
}

func TestResolveCmdPending(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	srv := namingServer(t, nil)

	cmd := namecmd.ResolveCmd{Server: srv.URL, Name: "bob"}
	assert.NoError(cmd.Validate())
	_, err := cmd.Exec(nil)
	assert.That(err == naming.ErrPending, "want ErrPending, got %v", err)
}

func TestResolveCmdValidate(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	cmd := namecmd.ResolveCmd{Name: ""}
	assert.Error(cmd.Validate())

	cmd = namecmd.ResolveCmd{Name: "alice_x"}
	assert.Error(cmd.Validate())

	cmd = namecmd.ResolveCmd{Name: "alice_7"}
	assert.NoError(cmd.Validate())
}

func TestUpdateCmdValidate(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	cmd := namecmd.UpdateCmd{Name: "alice", NodeURI: "https://node2.example", KeysFile: "keys.json"}
	assert.NoError(cmd.Validate())

	cmd.NodeURI = "not-a-url"
	assert.Error(cmd.Validate())

	cmd.NodeURI = "https://node2.example"
	cmd.KeysFile = ""
	assert.Error(cmd.Validate())
}
