package clientgen

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infiotinc/gqlproxy/config"
)

const testConfig = `
endpoint: http://localhost/graphql
generate:
  package: starwars
  output: starwars_gen.go
  type: Service
operations:
  - method: NoQuery
  - query: query HeroName { hero { name } }
    returns: string
  - method: WithVars
    query: 'query HeroNameAndFriends($episode: String, $type: Int!) { hero(episode: $episode, type: $type) { name } }'
    returns: "*github.com/infiotinc/gqlproxy/example/model.Hero"
  - method: Touch
    query: "mutation Touch { touch }"
`

func loadTestConfig(t *testing.T) *config.Config {
	cfg, err := config.ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}

	return cfg
}

func TestGenerate(t *testing.T) {
	g, err := NewGenerator(loadTestConfig(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Generate(&buf))

	src := buf.String()

	_, err = parser.ParseFile(token.NewFileSet(), "starwars_gen.go", src, parser.AllErrors)
	require.NoError(t, err, src)

	assert.Contains(t, src, "// Code generated by gqlproxy, DO NOT EDIT.")
	assert.Contains(t, src, "package starwars")
	assert.Contains(t, src, `"github.com/infiotinc/gqlproxy/client"`)
	assert.Contains(t, src, "type Service struct")
	assert.Contains(t, src, "func NewService(cfg client.Config) (*Service, error)")

	assert.Contains(t, src, "func (c *Service) NoQuery(ctx context.Context) error")
	assert.Contains(t, src, `return client.Exec(ctx, c.Client, "NoQuery")`)
	assert.Contains(t, src, "func (c *Service) NoQueryAsync(ctx context.Context) *client.Future[client.Unit]")

	assert.Contains(t, src, "func (c *Service) HeroName(ctx context.Context) (string, error)")
	assert.Contains(t, src, `return client.Call[string](ctx, c.Client, "HeroName")`)
	assert.Contains(t, src, `return client.Submit[string](ctx, c.Client, "HeroName")`)

	assert.Contains(t, src, "func (c *Service) WithVars(ctx context.Context, episode *string, typeArg int) (*model.Hero, error)")
	assert.Contains(t, src, `return client.Call[*model.Hero](ctx, c.Client, "WithVars", episode, typeArg)`)

	assert.NotContains(t, src, `Method: "NoQuery"`)
	assert.Regexp(t, `Name:\s+"type"`, src)
}

func TestGenerateRequiresPackage(t *testing.T) {
	cfg := loadTestConfig(t)

	cfg.Generate.Package = ""
	_, err := NewGenerator(cfg)
	assert.Error(t, err)

	cfg.Generate = nil
	_, err = NewGenerator(cfg)
	assert.Error(t, err)
}

func TestGenerateFile(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Generate.Output = filepath.Join(t.TempDir(), "gen", "starwars_gen.go")

	require.NoError(t, GenerateFile(cfg))

	b, err := os.ReadFile(cfg.Generate.Output)
	require.NoError(t, err)
	assert.Contains(t, string(b), "func (c *Service) TouchAsync(ctx context.Context) *client.Future[client.Unit]")
}
