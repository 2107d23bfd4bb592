// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"github.com/ChainSafe/cumulus/types"
	"github.com/ChainSafe/gossamer/lib/common"
)

// checkBlockStatus reports whether the given parachain block is safe to
// build on right now, using only local import-status knowledge. It has no
// side effects beyond logging.
func (c *Collator) checkBlockStatus(hash common.Hash) bool {
	status, err := c.blockState.BlockStatus(hash)
	if err != nil {
		logger.Error("failed to get block status", "hash", hash, "error", err)
		return false
	}

	switch status {
	case types.BlockStatusInChainWithState:
		return true
	case types.BlockStatusQueued:
		logger.Debug("skipping candidate production, block is still queued for import",
			"hash", hash)
		return false
	case types.BlockStatusInChainPruned:
		logger.Error("skipping candidate production, block state is already pruned",
			"hash", hash)
		return false
	case types.BlockStatusKnownBad:
		logger.Error("block is tagged as known bad and is included in the relay chain, "+
			"skipping candidate production", "hash", hash)
		return false
	case types.BlockStatusUnknown:
		logger.Debug("skipping candidate production, block is unknown", "hash", hash)
		return false
	default:
		logger.Error("unexpected block status", "hash", hash, "status", status)
		return false
	}
}
