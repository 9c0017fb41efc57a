// Package storage keeps small string values across runs. The game stores a
// single key in it: the best score.
package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ErrUnavailable is returned when the backing store cannot be reached at all.
var ErrUnavailable = errors.New("storage unavailable")

// KV is a string key/value store. Get reports ok=false for a missing key.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Best reads and writes the best score as a base-10 integer under one key.
type Best struct {
	kv  KV
	key string
}

func NewBest(kv KV, key string) *Best {
	return &Best{kv: kv, key: key}
}

// LoadBest returns 0 for a missing value. A value that is not a
// non-negative integer is reported as an error.
func (b *Best) LoadBest() (int, error) {
	v, ok, err := b.kv.Get(b.key)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", b.key, err)
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", b.key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("load %s: negative score %d", b.key, n)
	}
	return n, nil
}

func (b *Best) SaveBest(best int) error {
	if err := b.kv.Set(b.key, strconv.Itoa(best)); err != nil {
		return fmt.Errorf("save %s: %w", b.key, err)
	}
	return nil
}

// Memory is an in-process KV.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.m[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.m[key] = value
	m.mu.Unlock()
	return nil
}
