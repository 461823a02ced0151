// Package idgen produces the human-readable entity identifiers
// (JTC-001, CLIENT-001, PROJECT-001) and the numeric ids used for contact
// persons and users.
//
// Identifiers are derived from a strictly increasing per-kind sequence
// rather than from a stored-count+1 scheme: counts shrink on deletion and
// race under concurrent creates, which would hand out colliding ids. The
// sequence keeps the observable format while closing that gap.
package idgen

import (
	"context"
	"fmt"
)

// Sequence hands out strictly increasing numbers per named counter. The
// production implementation is a Redis INCR; tests use an in-memory one.
type Sequence interface {
	Next(ctx context.Context, name string) (int64, error)
}

const (
	seqEmployee = "employee"
	seqClient   = "client"
	seqProject  = "project"
	seqContact  = "contact"
	seqUser     = "user"
)

// Generator formats sequence numbers into entity ids. It is only consulted
// when an entity arrives without an id; explicitly supplied ids are
// respected verbatim by the services.
type Generator struct {
	seq Sequence
}

func New(seq Sequence) *Generator {
	return &Generator{seq: seq}
}

func (g *Generator) NextEmployeeID(ctx context.Context) (string, error) {
	return g.formatted(ctx, seqEmployee, "JTC-%03d")
}

func (g *Generator) NextClientID(ctx context.Context) (string, error) {
	return g.formatted(ctx, seqClient, "CLIENT-%03d")
}

func (g *Generator) NextProjectID(ctx context.Context) (string, error) {
	return g.formatted(ctx, seqProject, "PROJECT-%03d")
}

func (g *Generator) NextContactID(ctx context.Context) (int64, error) {
	return g.seq.Next(ctx, seqContact)
}

func (g *Generator) NextUserID(ctx context.Context) (int64, error) {
	return g.seq.Next(ctx, seqUser)
}

func (g *Generator) formatted(ctx context.Context, name, format string) (string, error) {
	n, err := g.seq.Next(ctx, name)
	if err != nil {
		return "", fmt.Errorf("next %s id: %w", name, err)
	}
	return fmt.Sprintf(format, n), nil
}
