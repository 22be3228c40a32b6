package models

import "fmt"

// Rights is the ordered permission level a user holds on an environment.
// The numeric values are part of the City Hall wire contract: the grant
// endpoint sends them and the environment/user info endpoints return them
// as plain integers, so they must not be reordered.
type Rights int

const (
	// RightsNone grants nothing; granting it revokes existing rights.
	RightsNone Rights = iota
	// RightsRead allows reading unprotected values.
	RightsRead
	// RightsReadProtected additionally allows reading protected values.
	RightsReadProtected
	// RightsWrite additionally allows creating and changing values.
	RightsWrite
	// RightsGrant additionally allows managing other users' rights.
	RightsGrant
)

var rightsNames = map[Rights]string{
	RightsNone:          "none",
	RightsRead:          "read",
	RightsReadProtected: "read-protected",
	RightsWrite:         "write",
	RightsGrant:         "grant",
}

func (r Rights) String() string {
	if name, ok := rightsNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rights(%d)", int(r))
}

// ParseRights converts a human-readable rights name, as accepted on the
// command line, back into its wire value.
func ParseRights(name string) (Rights, error) {
	for r, n := range rightsNames {
		if n == name {
			return r, nil
		}
	}
	return RightsNone, fmt.Errorf("unknown rights level %q", name)
}
