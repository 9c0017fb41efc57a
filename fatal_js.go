//go:build js

package main

import "log"

func fatal(err error) {
	log.Fatal(err)
}
