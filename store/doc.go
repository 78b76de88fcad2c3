// Package store persists bearer tokens to a single JSON file and answers
// authentication queries against it.
//
// The file holds an array of {"token": <identifier>, "expires": <unix millis>}
// records. Every public operation reloads the file, so several processes may
// share one path; writers are serialized with an advisory lock on a sibling
// ".lock" file for local paths. Expired tokens are dropped whenever the file
// is written.
package store
