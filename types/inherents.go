// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// ErrInherentExists is returned when an inherent identifier is set twice.
var ErrInherentExists = errors.New("inherent already exists")

// InherentIdentifier identifies the kind of an inherent.
type InherentIdentifier [8]byte

func (i InherentIdentifier) String() string {
	return string(i[:])
}

// InherentData is the opaque input bundle handed to the block builder. It
// maps inherent identifiers to SCALE-encoded payloads; every identifier may
// be inserted exactly once.
type InherentData struct {
	data map[InherentIdentifier][]byte
}

// NewInherentData returns an empty InherentData.
func NewInherentData() *InherentData {
	return &InherentData{
		data: make(map[InherentIdentifier][]byte),
	}
}

// SetInherent SCALE encodes the given value and stores it under the given
// identifier. Setting the same identifier twice is an error.
func (d *InherentData) SetInherent(key InherentIdentifier, value interface{}) error {
	if _, has := d.data[key]; has {
		return fmt.Errorf("%w: %s", ErrInherentExists, key)
	}

	enc, err := scale.Marshal(value)
	if err != nil {
		return fmt.Errorf("scale encoding inherent %s: %w", key, err)
	}

	d.data[key] = enc
	return nil
}

// Inherent returns the encoded payload stored under the given identifier.
func (d *InherentData) Inherent(key InherentIdentifier) ([]byte, bool) {
	enc, has := d.data[key]
	return enc, has
}

// Len returns the number of inherents in the bundle.
func (d *InherentData) Len() int {
	return len(d.data)
}

// Encode returns the SCALE encoding of the bundle as a map of identifier to
// payload bytes. Entries are encoded in identifier order so the encoding is
// deterministic.
func (d *InherentData) Encode() ([]byte, error) {
	keys := make([]InherentIdentifier, 0, len(d.data))
	for key := range d.data {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})

	length, err := scale.Marshal(uint(len(d.data)))
	if err != nil {
		return nil, err
	}

	buffer := bytes.Buffer{}
	if _, err := buffer.Write(length); err != nil {
		return nil, err
	}

	for _, key := range keys {
		venc, err := scale.Marshal(d.data[key])
		if err != nil {
			return nil, err
		}

		if _, err := buffer.Write(key[:]); err != nil {
			return nil, err
		}
		if _, err := buffer.Write(venc); err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}
