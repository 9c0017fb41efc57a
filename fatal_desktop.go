//go:build !js

package main

import (
	"log"

	"github.com/ncruces/zenity"
)

// fatal reports err in a native dialog before exiting.
func fatal(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Flappy Bird"), zenity.ErrorIcon)
	log.Fatal(err)
}
