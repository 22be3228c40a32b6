package models

import "time"

// BaseResponse is the envelope wrapping every single City Hall response.
// The executor layer depends only on this shape, never on the payload.
type BaseResponse struct {
	// Response is "Ok" on success and "Failure" otherwise.
	Response string `json:"Response"`
	// Message carries the server's error text when Response is not "Ok".
	Message string `json:"Message"`
}

// Valid reports whether the server accepted the request.
func (r BaseResponse) Valid() bool {
	return r.Response == "Ok"
}

// ErrorMessage returns the server-authored failure text, empty on success.
func (r BaseResponse) ErrorMessage() string {
	return r.Message
}

// ValueResponse carries a single configuration value. It is also the shape
// of the default-environment lookup.
type ValueResponse struct {
	BaseResponse
	Value string `json:"value"`
}

// LogEntry is the wire shape of one history record.
type LogEntry struct {
	Active   bool      `json:"active"`
	Override string    `json:"override"`
	ID       int       `json:"id"`
	Value    string    `json:"value"`
	DateTime time.Time `json:"datetime"`
	Protect  bool      `json:"protect"`
	Name     string    `json:"name"`
	Author   string    `json:"author"`
}

// HistoryResponse carries the change log of a value, returned for reads
// with viewhistory=true.
type HistoryResponse struct {
	BaseResponse
	History []LogEntry `json:"History"`
}

// ChildResponse is the wire shape of one direct descendant of a path.
type ChildResponse struct {
	Override string `json:"override"`
	Path     string `json:"path"`
	ID       int    `json:"id"`
	Value    string `json:"value"`
	Protect  bool   `json:"protect"`
	Name     string `json:"name"`
}

// ChildrenResponse carries the direct descendants of a path, returned for
// reads with viewchildren=true.
type ChildrenResponse struct {
	BaseResponse
	Path     string          `json:"path"`
	Children []ChildResponse `json:"children"`
}

// EnvironmentResponse maps each user holding rights on the queried
// environment to their integer rights level.
type EnvironmentResponse struct {
	BaseResponse
	Users map[string]int `json:"Users"`
}

// UserInfoResponse maps each environment the queried user holds rights on
// to their integer rights level.
type UserInfoResponse struct {
	BaseResponse
	Environments map[string]int `json:"Environments"`
}
