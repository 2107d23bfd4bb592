// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"fmt"

	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/cumulus/types"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// buildCollation packages a freshly imported block into a collation. The
// chain-defined outputs not present in the block itself are read from the
// block's post-execution state at well-known keys; reads are scoped to that
// state snapshot and perform no writes.
func (c *Collator) buildCollation(blockData *types.ParachainBlockData,
	blockHash common.Hash, relayBlockNumber primitives.RelayChainBlockNumber,
) (*primitives.Collation, error) {
	encodedBlockData, err := blockData.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding block data: %w", err)
	}

	encodedHeader, err := scale.Marshal(blockData.Header)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	state, err := c.storageState.StateAt(blockHash)
	if err != nil {
		return nil, fmt.Errorf("getting state of the freshly built block: %w", err)
	}

	// absent key means the block sent no upward messages; a present but
	// undecodable value aborts the collation
	upwardMessages := []primitives.UpwardMessage{}
	if raw := state.Get(primitives.UpwardMessagesKey); raw != nil {
		if err := scale.Unmarshal(raw, &upwardMessages); err != nil {
			return nil, fmt.Errorf("decoding upward messages: %w", err)
		}
	}

	// the validation code is stored raw, so there is nothing to decode
	var newValidationCode *primitives.ValidationCode
	if raw := state.Get(primitives.NewValidationCodeKey); raw != nil {
		code := primitives.ValidationCode(raw)
		newValidationCode = &code
	}

	var processedDownwardMessages uint32
	if raw := state.Get(primitives.ProcessedDownwardMessagesKey); raw != nil {
		if err := scale.Unmarshal(raw, &processedDownwardMessages); err != nil {
			return nil, fmt.Errorf("decoding processed downward message count: %w", err)
		}
	}

	return &primitives.Collation{
		UpwardMessages:            upwardMessages,
		NewValidationCode:         newValidationCode,
		HeadData:                  encodedHeader,
		ProofOfValidity:           primitives.PoV{BlockData: encodedBlockData},
		ProcessedDownwardMessages: processedDownwardMessages,
		// TODO: source horizontal messages from state once the runtime
		// defines a well-known key for them.
		HorizontalMessages: []primitives.OutboundHrmpMessage{},
		HrmpWatermark:      relayBlockNumber,
	}, nil
}
