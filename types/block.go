// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package types contains the concrete child-chain block types produced and
// imported by the collator.
package types

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Extrinsic is an opaque, SCALE-encoded chain operation.
type Extrinsic []byte

// Body is the ordered sequence of operations in a block.
type Body []Extrinsic

// Digest is the ordered list of encoded digest items attached to a header.
type Digest [][]byte

// Header is a child-chain block header.
type Header struct {
	ParentHash     common.Hash `scale:"1"`
	Number         uint        `scale:"2"`
	StateRoot      common.Hash `scale:"3"`
	ExtrinsicsRoot common.Hash `scale:"4"`
	Digest         Digest      `scale:"5"`
	hash           common.Hash
}

// NewHeader creates a new block header.
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// Hash returns the blake2b hash of the SCALE-encoded header.
// The hash is computed on first call and cached.
func (h *Header) Hash() common.Hash {
	if h.hash == (common.Hash{}) {
		enc, err := scale.Marshal(*h)
		if err != nil {
			panic(fmt.Sprintf("failed to scale encode header: %s", err))
		}

		hash, err := common.Blake2bHash(enc)
		if err != nil {
			panic(fmt.Sprintf("failed to hash header: %s", err))
		}

		h.hash = hash
	}

	return h.hash
}

func (h *Header) String() string {
	return fmt.Sprintf("Header{ParentHash: %s, Number: %d, StateRoot: %s, ExtrinsicsRoot: %s}",
		h.ParentHash, h.Number, h.StateRoot, h.ExtrinsicsRoot)
}

// Block is a child-chain block.
type Block struct {
	Header Header `scale:"1"`
	Body   Body   `scale:"2"`
}

// NewBlock creates a new block.
func NewBlock(header Header, body Body) *Block {
	return &Block{
		Header: header,
		Body:   body,
	}
}
