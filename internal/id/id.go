package id

import "github.com/oklog/ulid/v2"

// New returns a 26-character ULID. IDs sort lexically by creation time, so
// history rows can be paged without a separate timestamp index.
func New() string {
	return ulid.Make().String()
}
