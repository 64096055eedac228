package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jensneuse/abstractlogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/infiotinc/gqlproxy/client"
	"github.com/infiotinc/gqlproxy/config"
)

func testLogger(t *testing.T) abstractlogger.Logger {
	logger, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		t.Fatal(err)
	}

	return abstractlogger.NewZapLogger(logger, abstractlogger.DebugLevel)
}

func testConfig(t *testing.T, endpoint string) *config.Config {
	cfg, err := config.ParseConfig([]byte(`
endpoint: ` + endpoint + `
timeout: 5s
headers:
  X-Test: "yes"
operations:
  - method: WithVars
    query: 'query HeroNameAndFriends($episode: String, $id: Int) { hero(episode: $episode, id: $id) { name } }'
    returns: string
  - query: "mutation Touch { touch }"
`))
	require.NoError(t, err)

	return cfg
}

func TestExecOperation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yes", r.Header.Get("X-Test"))

		b, _ := io.ReadAll(r.Body)
		switch string(b) {
		case `{"query":"query HeroNameAndFriends($episode: String, $id: Int) { hero(episode: $episode, id: $id) { name } }","variables":{"episode":"JEDI","id":123}}`:
			_, _ = w.Write([]byte(`"R2-D2"`))
		case `{"query":"mutation Touch { touch }"}`:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)

	var out bytes.Buffer
	err := execOperation(context.Background(), cfg, testLogger(t), "WithVars", []string{"episode=JEDI", "id=123"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "\"R2-D2\"\n", out.String())

	out.Reset()
	err = execOperation(context.Background(), cfg, testLogger(t), "Touch", nil, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())

	err = execOperation(context.Background(), cfg, testLogger(t), "WithVars", []string{"episode=EMPIRE"}, &out)
	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}

func TestExecOperationErrors(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:0/graphql")

	err := execOperation(context.Background(), cfg, abstractlogger.NoopLogger, "Unknown", nil, io.Discard)
	assert.Error(t, err)

	err = execOperation(context.Background(), cfg, abstractlogger.NoopLogger, "WithVars", []string{"episode"}, io.Discard)
	assert.Error(t, err)
}

func TestCallArgs(t *testing.T) {
	op := &config.OperationConfig{Vars: []string{"a", "b", "c", "d"}}

	args, err := callArgs(op, []string{"c=true", "a=foo", "b=1.5"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"foo", 1.5, true, nil}, args)
}
