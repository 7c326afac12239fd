// Package store reads and writes the host's persistent key/value store.
//
// Values survive across plugin runs. Each value type has its own key space,
// so an int and a string may share a key. Every getter asks the host whether
// the key exists before reading it; absence is reported with a false ok.
package store

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/internal/binding"
)

// Persistent accesses the store through a host.
// The zero value uses the process-wide host binding.
type Persistent struct {
	host ports.StoreHost
}

// New returns a Persistent over h.
func New(h ports.StoreHost) *Persistent {
	return &Persistent{host: h}
}

func (p *Persistent) h() ports.StoreHost {
	if p == nil || p.host == nil {
		return binding.Host()
	}
	return p.host
}

// Int returns the int32 stored under key.
func (p *Persistent) Int(key string) (int32, bool) {
	h := p.h()
	if !h.Contains(entities.StoreI32, key) {
		return 0, false
	}
	return h.AccessInt(key), true
}

// Float returns the float32 stored under key.
func (p *Persistent) Float(key string) (float32, bool) {
	h := p.h()
	if !h.Contains(entities.StoreF32, key) {
		return 0, false
	}
	return h.AccessFloat(key), true
}

// String returns the string stored under key.
func (p *Persistent) String(key string) (string, bool) {
	h := p.h()
	if !h.Contains(entities.StoreStr, key) {
		return "", false
	}
	return h.AccessString(key), true
}

func (p *Persistent) SetInt(key string, v int32) {
	p.h().StoreInt(key, v)
}

func (p *Persistent) SetFloat(key string, v float32) {
	p.h().StoreFloat(key, v)
}

// SetString stores v under key. The host sees v up to its first NUL byte.
func (p *Persistent) SetString(key, v string) {
	p.h().StoreString(key, v)
}

func (p *Persistent) HasInt(key string) bool {
	return p.h().Contains(entities.StoreI32, key)
}

func (p *Persistent) HasFloat(key string) bool {
	return p.h().Contains(entities.StoreF32, key)
}

func (p *Persistent) HasString(key string) bool {
	return p.h().Contains(entities.StoreStr, key)
}

// RemoveInt deletes the int32 under key. Removing a missing key does nothing.
func (p *Persistent) RemoveInt(key string) {
	p.h().RemoveValue(entities.StoreI32, key)
}

func (p *Persistent) RemoveFloat(key string) {
	p.h().RemoveValue(entities.StoreF32, key)
}

func (p *Persistent) RemoveString(key string) {
	p.h().RemoveValue(entities.StoreStr, key)
}
