// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// BlockStatus is the local import status of a block hash. It is queried per
// candidate request and never persisted.
type BlockStatus byte

const (
	// BlockStatusQueued means the block import is in flight and its state is
	// not yet materialised.
	BlockStatusQueued BlockStatus = iota
	// BlockStatusInChainWithState means the block is in the chain and its
	// state is available.
	BlockStatusInChainWithState
	// BlockStatusInChainPruned means the block is in the chain but its state
	// has been discarded.
	BlockStatusInChainPruned
	// BlockStatusKnownBad means the block was flagged invalid by a prior
	// validation.
	BlockStatusKnownBad
	// BlockStatusUnknown means the block was never seen locally.
	BlockStatusUnknown
)

func (s BlockStatus) String() string {
	switch s {
	case BlockStatusQueued:
		return "Queued"
	case BlockStatusInChainWithState:
		return "InChainWithState"
	case BlockStatusInChainPruned:
		return "InChainPruned"
	case BlockStatusKnownBad:
		return "KnownBad"
	case BlockStatusUnknown:
		return "Unknown"
	default:
		return "invalid"
	}
}

// BlockOrigin describes where a block being imported came from.
type BlockOrigin byte

const (
	// BlockOriginGenesis is the genesis block.
	BlockOriginGenesis BlockOrigin = iota
	// BlockOriginNetworkInitialSync is a block received during initial sync.
	BlockOriginNetworkInitialSync
	// BlockOriginNetworkBroadcast is a block received from a network
	// broadcast.
	BlockOriginNetworkBroadcast
	// BlockOriginOwn is a block authored by this node.
	BlockOriginOwn
	// BlockOriginFile is a block imported from a file.
	BlockOriginFile
)
