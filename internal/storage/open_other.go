//go:build !js

package storage

import "log"

// Open returns a file store rooted at dir.
func Open(dir string) KV {
	log.Printf("[storage] using %s", dir)
	return NewFile(dir)
}
