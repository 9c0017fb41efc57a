//go:build js && wasm

package storage

import (
	"fmt"
	"syscall/js"
)

// Local is the browser's window.localStorage. Private browsing and storage
// policies can make every call throw, which surfaces here as an error.
type Local struct {
	ls js.Value
}

func NewLocal() (*Local, error) {
	var ls js.Value
	err := catch(func() { ls = js.Global().Get("localStorage") })
	if err != nil {
		return nil, err
	}
	if ls.IsUndefined() || ls.IsNull() {
		return nil, ErrUnavailable
	}
	return &Local{ls: ls}, nil
}

func (l *Local) Get(key string) (value string, ok bool, err error) {
	err = catch(func() {
		v := l.ls.Call("getItem", key)
		if v.IsNull() || v.IsUndefined() {
			return
		}
		value, ok = v.String(), true
	})
	return value, ok, err
}

func (l *Local) Set(key, value string) error {
	return catch(func() { l.ls.Call("setItem", key, value) })
}

// catch turns a thrown JS exception into an error.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()
	fn()
	return nil
}
