// Package starwars is a client for a Star Wars GraphQL API, generated from gqlproxy.yml
package starwars

import (
	"context"
)

//go:generate go run github.com/infiotinc/gqlproxy/cmd/gqlproxy generate -c gqlproxy.yml

type Character struct {
	Name string `json:"name"`
}

type Hero struct {
	Name    string      `json:"name"`
	Friends []Character `json:"friends"`
}

// Service is implemented by the generated Client
type Service interface {
	NoQuery(ctx context.Context) error
	SimpleQuery(ctx context.Context) (string, error)
	WithVars(ctx context.Context, episode string, id int) (string, error)
	Hero(ctx context.Context, episode string) (*Hero, error)
	Touch(ctx context.Context) error

	String() string
	Equal(other interface{}) bool
	Hash() uint64
}

var _ Service = (*Client)(nil)
