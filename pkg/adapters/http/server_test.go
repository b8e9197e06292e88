package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/andsky/talekeeper/pkg/adapters/http"
	"github.com/andsky/talekeeper/pkg/domain"
	"github.com/andsky/talekeeper/pkg/engine"
	"github.com/andsky/talekeeper/pkg/ledger"
	"github.com/andsky/talekeeper/pkg/world"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	registry := world.Default()
	agent := engine.NewAgent(registry, ledger.NewMemoryLedger())
	srv := httptest.NewServer(httpadapter.NewHandler(agent, registry, nil))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCatalogEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/catalog")
	require.NoError(t, err)
	defer resp.Body.Close()

	var products []domain.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, len(world.DefaultCatalog()))
}

func TestToolsListing(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/tools")
	require.NoError(t, err)
	defer resp.Body.Close()

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, engine.ToolNames(), names)
}

func TestToolInvocation(t *testing.T) {
	srv := newTestServer(t)

	post := func(t *testing.T, name, body string) (*http.Response, httpadapter.ToolResponse) {
		t.Helper()
		resp, err := http.Post(srv.URL+"/tools/"+name, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })

		var out httpadapter.ToolResponse
		if resp.StatusCode == http.StatusOK {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		}
		return resp, out
	}

	resp, out := post(t, "start_adventure", `{"player_name": "Mira"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "start_adventure", out.Tool)
	assert.Contains(t, out.Text, "Welcome, Mira!")

	resp, out = post(t, "player_action", `{"action": "examine_sphere"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, out.Text, "You chose 'examine_sphere'.")

	// No body at all is a valid empty-argument call.
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/tools/show_cart", nil)
	require.NoError(t, err)
	respNoBody, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer respNoBody.Body.Close()
	assert.Equal(t, http.StatusOK, respNoBody.StatusCode)
}

func TestConcurrentToolCallsAreSerialized(t *testing.T) {
	registry := world.Default()
	agent := engine.NewAgent(registry, ledger.NewMemoryLedger())
	srv := httptest.NewServer(httpadapter.NewHandler(agent, registry, nil))
	t.Cleanup(srv.Close)

	const workers = 8
	const callsPerWorker = 25

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerWorker; j++ {
				resp, err := http.Post(srv.URL+"/tools/add_to_cart", "application/json",
					strings.NewReader(`{"product": "mug-001"}`))
				if err != nil {
					t.Error(err)
					return
				}
				resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					t.Errorf("status = %d", resp.StatusCode)
					return
				}
			}
		}()
	}
	wg.Wait()

	// Every append landed; concurrent clients must not lose cart lines.
	assert.Len(t, agent.State().Cart, workers*callsPerWorker)
}

func TestToolInvocationErrors(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/tools/read_minds", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/tools/get_scene", "application/json", strings.NewReader(`not json`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
