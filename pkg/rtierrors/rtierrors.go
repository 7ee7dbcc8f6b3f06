// Package rtierrors holds the closed exception catalogue of the Federate
// Protocol and translates wire-level exception descriptors into typed errors.
//
// Every public operation of the client returns either nil or an *Error. The
// Kind of an *Error can be matched with errors.Is:
//
//	if errors.Is(err, rtierrors.NotConnected) { ... }
package rtierrors

import (
	"errors"
	"fmt"
)

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k := kindUnknown + 1; k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

func (k Kind) String() string {
	if k == kindUnknown || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return kindNames[k]
}

// Error lets a bare Kind act as a match target for errors.Is.
func (k Kind) Error() string {
	return k.String()
}

// Lookup resolves a catalogue name. Names are case sensitive.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// Kinds lists every catalogued kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := kindUnknown + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Descriptor is the (name, details) pair carried by a failed response or
// callback response envelope.
type Descriptor struct {
	Name    string
	Details string
}

type Error struct {
	Kind    Kind
	Details string

	// RemoteName is set when the remote side reported a name outside the
	// catalogue and Kind fell back to RTIinternalError.
	RemoteName string

	Cause error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.RemoteName != "" {
		msg = fmt.Sprintf("%s (unknown exception %s)", msg, e.RemoteName)
	}
	if e.Details != "" {
		msg = msg + ": " + e.Details
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Descriptor converts the error back into its wire form. Unknown remote
// names are reported under their original name.
func (e *Error) Descriptor() Descriptor {
	name := e.Kind.String()
	if e.RemoteName != "" {
		name = e.RemoteName
	}
	details := e.Details
	if e.Cause != nil {
		if details == "" {
			details = e.Cause.Error()
		} else {
			details = details + ": " + e.Cause.Error()
		}
	}
	return Descriptor{Name: name, Details: details}
}

// Translate builds the typed error for a descriptor received from the RTI.
// It never fails: names outside the catalogue become RTIinternalError.
func Translate(d Descriptor) *Error {
	if k, ok := byName[d.Name]; ok {
		return &Error{Kind: k, Details: d.Details}
	}
	return &Error{Kind: RTIinternalError, Details: d.Details, RemoteName: d.Name}
}

func New(kind Kind, details string) *Error {
	return &Error{Kind: kind, Details: details}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Details: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, cause error, details string) *Error {
	return &Error{Kind: kind, Details: details, Cause: cause}
}

// Internal wraps a failure that originated inside the client as an
// RTIinternalError.
func Internal(cause error, details string) *Error {
	return Wrap(RTIinternalError, cause, details)
}

// KindOf reports the kind of the outermost *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var rtiErr *Error
	if errors.As(err, &rtiErr) {
		return rtiErr.Kind, true
	}
	return kindUnknown, false
}
