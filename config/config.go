package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jensneuse/abstractlogger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/infiotinc/gqlproxy/client"
	"github.com/infiotinc/gqlproxy/client/transport"
)

const DefaultTypeName = "Client"

// Config describes an endpoint and the operations a generated client exposes
type Config struct {
	Endpoint   string             `yaml:"endpoint"`
	Timeout    time.Duration      `yaml:"timeout,omitempty"`
	Headers    map[string]string  `yaml:"headers,omitempty"`
	Generate   *GenerateConfig    `yaml:"generate,omitempty"`
	Operations []*OperationConfig `yaml:"operations"`
}

type GenerateConfig struct {
	Package string `yaml:"package"`
	// Output is relative to the config file
	Output string `yaml:"output"`
	// Type is the name of the generated client struct, defaults to DefaultTypeName
	Type string `yaml:"type,omitempty"`
}

// OperationConfig mirrors one interface method.
// An entry with a Method but no Query declares a method that always fails with client.MissingQueryError.
type OperationConfig struct {
	Method string `yaml:"method,omitempty"`
	Query  string `yaml:"query,omitempty"`
	// Vars lists variable names in argument order
	Vars []string `yaml:"vars,omitempty"`
	// Args lists the Go types of the arguments
	Args []string `yaml:"args,omitempty"`
	// Returns is the Go type of the result, empty when the operation returns no value
	Returns string `yaml:"returns,omitempty"`
}

// LoadConfig reads filename, a .env file next to it is loaded into the environment first
func LoadConfig(filename string) (*Config, error) {
	dir := filepath.Dir(filename)

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	cfg, err := ParseConfig(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if cfg.Generate != nil && cfg.Generate.Output != "" && !filepath.IsAbs(cfg.Generate.Output) {
		cfg.Generate.Output = filepath.Join(dir, cfg.Generate.Output)
	}

	return cfg, nil
}

// ParseConfig decodes a YAML config.
// ${VAR} references in the endpoint and header values are expanded from the environment, queries are left as is.
func ParseConfig(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := cfg.init(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) init() error {
	c.Endpoint = os.ExpandEnv(c.Endpoint)
	for k, v := range c.Headers {
		c.Headers[k] = os.ExpandEnv(v)
	}

	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}

	if c.Generate != nil && c.Generate.Type == "" {
		c.Generate.Type = DefaultTypeName
	}

	methods := make(map[string]struct{}, len(c.Operations))
	for i, op := range c.Operations {
		if err := op.resolve(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}

		if client.IsObjectMethod(op.Method) {
			return fmt.Errorf("operation %d: method name %s is reserved", i, op.Method)
		}

		if _, ok := methods[op.Method]; ok {
			return fmt.Errorf("operation %d: duplicate method %s", i, op.Method)
		}
		methods[op.Method] = struct{}{}
	}

	return nil
}

func (c *Config) Operation(method string) *OperationConfig {
	for _, op := range c.Operations {
		if op.Method == method {
			return op
		}
	}

	return nil
}

// ClientOperations returns the operations of every method that has a query
func (c *Config) ClientOperations() []client.Operation {
	ops := make([]client.Operation, 0, len(c.Operations))
	for _, op := range c.Operations {
		if op.Query == "" {
			continue
		}

		ops = append(ops, op.Operation())
	}

	return ops
}

// Transport returns an http transport honoring Timeout and Headers
func (c *Config) Transport() *transport.Http {
	tr := &transport.Http{
		Client: &http.Client{
			Timeout: c.Timeout,
		},
	}

	for k, v := range c.Headers {
		tr.RequestOptions = append(tr.RequestOptions, transport.WithHeader(k, v))
	}

	return tr
}

func (c *Config) NewClient(log abstractlogger.Logger) (*client.Client, error) {
	return client.New(client.Config{
		Endpoint:  c.Endpoint,
		Transport: c.Transport(),
		Logger:    log,
	}, c.ClientOperations()...)
}

func (o *OperationConfig) Operation() client.Operation {
	var vars []client.Var
	for i, name := range o.Vars {
		vars = append(vars, client.Var{Name: name, Index: i})
	}

	return client.Operation{
		Method: o.Method,
		Query:  o.Query,
		Vars:   vars,
	}
}
