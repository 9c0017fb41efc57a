//go:build js && wasm

package storage

import "log"

// Open returns the browser's localStorage, or memory when the page may not
// use it. The data directory has no meaning in the browser.
func Open(_ string) KV {
	l, err := NewLocal()
	if err != nil {
		log.Printf("[storage] localStorage unavailable, best score will not persist: %v", err)
		return NewMemory()
	}
	log.Printf("[storage] using localStorage")
	return l
}
