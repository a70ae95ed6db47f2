package personread

import "strings"

const fieldSeparator = ","

// ParsePerson splits s on commas into exactly a name and a surname.
// Fields are not trimmed. Splitting an empty string yields one empty field,
// so "" fails the same way as "onlyname".
func ParsePerson(s string) (Person, error) {
	fields := splitFields(s)
	if len(fields) != 2 {
		return Person{}, FormatFailure()
	}
	return Person{Name: fields[0], Surname: fields[1]}, nil
}

func splitFields(s string) []string {
	return strings.Split(s, fieldSeparator)
}
