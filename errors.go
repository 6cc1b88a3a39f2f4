package adt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned (or wrapped) by this package. Clients should test for them
// with errors.Is.
var (
	// ErrIncompleteMatch is the cause of every *IncompleteMatchError.
	ErrIncompleteMatch = errors.New("variant not covered in pattern")
	// ErrInvalidArgument flags a malformed pattern, handler or declaration.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateVariant is returned by Declare if a variant name occurs twice.
	ErrDuplicateVariant = errors.New("duplicate variant")
	// ErrNoSuchMethod is returned by Instance.Call for behavior no derivation installed.
	ErrNoSuchMethod = errors.New("no such method")
)

// IncompleteMatchError is returned by MatchWith if a pattern neither covers
// the variant of the instance nor contains a fallback case.
//
// An incomplete match is a programming error: the pattern is missing a case.
// The error message therefore explains how to fix it.
type IncompleteMatchError struct {
	TypeID string // type identifier of the instance's union
	Tag    string // the variant not covered
}

func (e *IncompleteMatchError) Error() string {
	return fmt.Sprintf(`variant %q of union %s not covered in pattern.
This could mean you did not include all variants in your union's MatchWith call.

For example, if you had this union:

    Operation := adt.MustDeclare("Operation",
        adt.Spec("Add", adt.Record("a", "b")),
        adt.Spec("Subtract", adt.Record("a", "b")),
    )

but wrote this MatchWith:

    op.MatchWith(adt.Pattern{
        "Add": func(op *adt.Instance) any { … },
        // Subtract not covered!
    })

it would fail like this because the pattern has no case for "Subtract".
Check your pattern, it's possibly missing a case for %q (or an adt.Any fallback).`,
		e.Tag, e.TypeID, e.Tag)
}

// Unwrap makes errors.Is(err, ErrIncompleteMatch) hold.
func (e *IncompleteMatchError) Unwrap() error {
	return ErrIncompleteMatch
}

// Cause is the pkg/errors counterpart of Unwrap.
func (e *IncompleteMatchError) Cause() error {
	return ErrIncompleteMatch
}
