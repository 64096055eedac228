package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infiotinc/gqlproxy/client"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GQLPROXY_TEST_TOKEN", "secret")

	cfg, err := LoadConfig("testdata/gqlproxy.yml")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "http://127.0.0.1:9999/graphql", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "Bearer secret", cfg.Headers["Authorization"])
	assert.Equal(t, "starwars", cfg.Generate.Package)
	assert.Equal(t, DefaultTypeName, cfg.Generate.Type)
	assert.Equal(t, filepath.Join("testdata", "gen", "starwars_gen.go"), cfg.Generate.Output)

	require.Len(t, cfg.Operations, 4)

	heroName := cfg.Operation("HeroName")
	require.NotNil(t, heroName)
	assert.Empty(t, heroName.Vars)
	assert.Empty(t, heroName.Args)

	withVars := cfg.Operation("WithVars")
	require.NotNil(t, withVars)
	assert.Equal(t, []string{"episode", "id", "tags"}, withVars.Vars)
	assert.Equal(t, []string{"*string", "int", "[]string"}, withVars.Args)
	assert.Contains(t, withVars.Query, "$episode")

	explicit := cfg.Operation("Explicit")
	require.NotNil(t, explicit)
	assert.Equal(t, []string{"string", "int"}, explicit.Args)
	assert.Empty(t, explicit.Returns)
}

func TestOperations(t *testing.T) {
	cfg, err := LoadConfig("testdata/gqlproxy.yml")
	require.NoError(t, err)

	ops := cfg.ClientOperations()
	require.Len(t, ops, 3)

	assert.Equal(t, "HeroName", ops[0].Method)
	assert.Equal(t, []client.Var{
		{Name: "episode", Index: 0},
		{Name: "id", Index: 1},
		{Name: "tags", Index: 2},
	}, ops[1].Vars)

	c, err := cfg.NewClient(nil)
	require.NoError(t, err)

	err = client.Exec(context.Background(), c, "NoQuery")
	var mqe *client.MissingQueryError
	assert.ErrorAs(t, err, &mqe)
}

func TestLoadConfigDotEnv(t *testing.T) {
	require.NoError(t, os.Unsetenv("GQLPROXY_TEST_ENDPOINT"))
	t.Cleanup(func() {
		_ = os.Unsetenv("GQLPROXY_TEST_ENDPOINT")
	})

	cfg, err := LoadConfig("testdata/env/gqlproxy.yml")
	require.NoError(t, err)

	assert.Equal(t, "http://from-dotenv/graphql", cfg.Endpoint)
	assert.Nil(t, cfg.Generate)
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string]string{
		"no endpoint": `operations: [{method: A, query: "{ a }"}]`,
		"unknown field": `
endpoint: http://localhost
unknown: 1
`,
		"empty operation": `
endpoint: http://localhost
operations: [{returns: string}]
`,
		"anonymous": `
endpoint: http://localhost
operations: [{query: "{ a }"}]
`,
		"duplicate": `
endpoint: http://localhost
operations: [{method: A, query: "{ a }"}, {method: A}]
`,
		"invalid query": `
endpoint: http://localhost
operations: [{method: A, query: "query {"}]
`,
		"two operations": `
endpoint: http://localhost
operations: [{method: A, query: "query A { a } query B { b }"}]
`,
		"reserved method": `
endpoint: http://localhost
operations: [{method: String, query: "{ a }"}]
`,
		"reserved derived method": `
endpoint: http://localhost
operations: [{query: "query Hash { a }"}]
`,
		"reserved method without query": `
endpoint: http://localhost
operations: [{method: Equal}]
`,
		"args mismatch": `
endpoint: http://localhost
operations: [{method: A, query: "{ a }", vars: [a], args: [string, int]}]
`,
	}

	for name, c := range cases {
		_, err := ParseConfig([]byte(c))
		assert.Error(t, err, name)
	}
}

func TestGoType(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
endpoint: http://localhost
operations:
  - query: "query Types($a: Float, $b: Boolean!, $c: [[Int!]], $d: Episode!) { a }"
`))
	require.NoError(t, err)

	op := cfg.Operation("Types")
	require.NotNil(t, op)
	assert.Equal(t, []string{"*float64", "bool", "[][]int", "interface{}"}, op.Args)
}
