// Package location resolves user supplied paths into afs URLs.
package location

import (
	"path/filepath"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Normalize turns a local path into an absolute file URL, leaving other URLs untouched.
func Normalize(location string) (string, error) {
	if url.Scheme(location, "") != "" {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", err
	}
	return file.Scheme + "://" + filepath.ToSlash(abs), nil
}

// IsLocal reports whether URL addresses the local file system.
func IsLocal(URL string) bool {
	return url.Scheme(URL, file.Scheme) == file.Scheme
}
