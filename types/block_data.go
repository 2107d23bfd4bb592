// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// StorageProof is the set of encoded trie nodes read while executing a block.
// Together with the block it lets a validator re-execute the block without
// the full parachain state.
type StorageProof [][]byte

// ParachainBlockData is the wire form of a produced block sent to relay
// chain validators as the proof-of-validity payload.
type ParachainBlockData struct {
	Header Header       `scale:"1"`
	Body   Body         `scale:"2"`
	Proof  StorageProof `scale:"3"`
}

// NewParachainBlockData creates the proof-of-validity payload for a block.
func NewParachainBlockData(header Header, body Body, proof StorageProof) *ParachainBlockData {
	return &ParachainBlockData{
		Header: header,
		Body:   body,
		Proof:  proof,
	}
}

// Encode returns the SCALE encoding of the block data.
func (b *ParachainBlockData) Encode() ([]byte, error) {
	return scale.Marshal(*b)
}

// DecodeParachainBlockData decodes SCALE-encoded block data, as found in a
// proof-of-validity payload.
func DecodeParachainBlockData(in []byte) (*ParachainBlockData, error) {
	blockData := new(ParachainBlockData)
	if err := scale.Unmarshal(in, blockData); err != nil {
		return nil, err
	}

	return blockData, nil
}
