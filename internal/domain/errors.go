package domain

import "fmt"

// NotFoundError signals that a referenced record does not exist. The message
// always names the offending value so operators can fix the source row.
type NotFoundError struct {
	Kind  string
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Value)
}

// DependencyError signals that an address level was resolved without its
// parent level. This is a contract violation by the caller, not bad data.
type DependencyError struct {
	Level   string
	Missing string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("cannot resolve %s without %s", e.Level, e.Missing)
}

// DuplicateKeyError signals a business-key collision on entity creation
// (CPF, CNPJ or plate already registered for the organization).
type DuplicateKeyError struct {
	Entity string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with %s already registered", e.Entity, e.Key)
}

// StoreError wraps any other failure coming from the record store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
