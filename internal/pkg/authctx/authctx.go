// Package authctx carries the authenticated identity through a request
// context so service methods can read it without threading IDs through
// every signature.
package authctx

import (
	"context"
	"errors"
)

var (
	ErrNoIdentity = errors.New("no authenticated identity in context")

	// ErrNotAnEmployee is returned by employee-scoped operations when
	// the caller is an admin account with no employee record.
	ErrNotAnEmployee = errors.New("account is not linked to an employee")
)

type Identity struct {
	UserID     string
	EmployeeID *string
	Email      string
	Role       string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// EmployeeID returns the caller's employee record id, failing for
// accounts that are not linked to one.
func EmployeeID(ctx context.Context) (string, error) {
	id, err := FromContext(ctx)
	if err != nil {
		return "", err
	}
	if id.EmployeeID == nil || *id.EmployeeID == "" {
		return "", ErrNotAnEmployee
	}
	return *id.EmployeeID, nil
}
