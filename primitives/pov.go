// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package primitives

import (
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// BlockData is the opaque payload relay chain validators replay to check a
// candidate. For parachains built with this library it is the SCALE encoding
// of a ParachainBlockData.
type BlockData []byte

// PoV is the proof-of-validity accompanying a candidate.
type PoV struct {
	BlockData BlockData `scale:"1"`
}

// Hash returns the blake2b hash of the SCALE-encoded proof-of-validity.
func (p *PoV) Hash() (common.Hash, error) {
	enc, err := scale.Marshal(*p)
	if err != nil {
		return common.Hash{}, err
	}

	return common.Blake2bHash(enc)
}
