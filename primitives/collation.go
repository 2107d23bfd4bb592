// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package primitives

import (
	"context"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/sr25519"
)

// Collation is a produced parachain block candidate packaged with everything
// the relay chain validators need to check it. Created once per successful
// candidate production run and not mutated afterwards.
type Collation struct {
	// UpwardMessages were sent by the parachain to the relay chain while
	// executing this block.
	UpwardMessages []UpwardMessage `scale:"1"`
	// NewValidationCode is a new parachain runtime scheduled by this block,
	// if any.
	NewValidationCode *ValidationCode `scale:"2"`
	// HeadData is the encoded header of the produced block.
	HeadData HeadData `scale:"3"`
	// ProofOfValidity is replayed by validators to check the candidate.
	ProofOfValidity PoV `scale:"4"`
	// ProcessedDownwardMessages is the number of downward messages the block
	// consumed from the downward message queue.
	ProcessedDownwardMessages uint32 `scale:"5"`
	// HorizontalMessages were sent by the parachain to sibling parachains
	// while executing this block.
	HorizontalMessages []OutboundHrmpMessage `scale:"6"`
	// HrmpWatermark is the relay-parent-relative block number up to which all
	// inbound cross-chain messages have been processed.
	HrmpWatermark RelayChainBlockNumber `scale:"7"`
}

// CollatorFn produces a candidate for the given relay parent and validation
// data. A nil collation means no candidate could be produced this round.
type CollatorFn func(ctx context.Context, relayParent common.Hash,
	validationData *ValidationData) *Collation

// CollationGenerationConfig registers a collator with the collation
// generation subsystem. The callback is stored by the subsystem and invoked
// whenever the relay chain requests a fresh candidate.
type CollationGenerationConfig struct {
	// Key signs collations on the wire.
	Key *sr25519.Keypair
	// ParaID is the parachain this collator produces candidates for.
	ParaID ParaID
	// Collator produces the candidates.
	Collator CollatorFn
}
