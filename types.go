// Package personread reads a name,surname record from a text resource.
//
// The work is a strict chain: load the raw bytes, decode them as UTF-8, then
// split the text into exactly two fields. The first failing stage ends the
// chain and is reported as a single *Error.
package personread

import (
	"context"
	"fmt"
)

// Person is the record produced by the parser. Both fields are kept verbatim.
type Person struct {
	Name    string
	Surname string
}

// String renders a debug view of the record, e.g. Person{name: "Ada", surname: "Lovelace"}.
func (p Person) String() string {
	return fmt.Sprintf("Person{name: %q, surname: %q}", p.Name, p.Surname)
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePerson.
func (p *Person) UnmarshalText(text []byte) error {
	parsed, err := ParsePerson(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Loader obtains the full contents of a named resource.
type Loader interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, name string) ([]byte, error)

// Load calls f(ctx, name).
func (f LoaderFunc) Load(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}

// state carries one invocation through the stage sequence.
type state struct {
	Resource string
	Raw      []byte
	Text     string
	Person   Person
}
