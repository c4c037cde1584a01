// Package repo implements validation and CRUD for each entity collection
// on top of the JSON record store.
package repo

import "time"

// now returns the timestamp format used for created_at/updated_at fields.
func now() string {
	return time.Now().Format(time.RFC3339)
}
