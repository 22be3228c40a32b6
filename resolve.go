package cityhall

import "fmt"

// Override selects which variant of a value an operation targets. The zero
// value means no preference: no override parameter is sent and the server
// answers with whatever is visible to the authenticated user, their own
// override falling back to the default. Over("") explicitly requests the
// unconditional default value, bypassing user-specific overrides, and
// Over(name) requests that named override. The three cases produce three
// distinct wire requests.
type Override struct {
	name string
	set  bool
}

// Over returns an Override targeting the named variant. Over("") targets
// the override-free default value.
func Over(name string) Override {
	return Override{name: name, set: true}
}

// params returns the query parameters carrying this override, ready to be
// extended with viewhistory/viewchildren by the caller.
func (o Override) params() map[string]string {
	if !o.set {
		return map[string]string{}
	}
	return map[string]string{"override": o.name}
}

// resolveEnvironment picks the environment a value operation runs against:
// an explicit name wins, otherwise the session default. With neither there
// is nothing sensible to ask the server for.
func (s *Session) resolveEnvironment(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	s.mu.Lock()
	def, user := s.defaultEnvironment, s.user
	s.mu.Unlock()

	if def == "" {
		return "", fmt.Errorf("%w: attempted to retrieve a value without specifying an environment and user %q has no default environment",
			ErrInvalidRequest, user)
	}
	return def, nil
}

// sanitizePath canonicalizes a value path so it both starts and ends with a
// slash; the empty path is the root "/". Idempotent.
func sanitizePath(path string) string {
	if path == "" {
		return "/"
	}
	if path[0] != '/' {
		path = "/" + path
	}
	if path[len(path)-1] != '/' {
		path += "/"
	}
	return path
}
