// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"
	"time"

	"github.com/ChainSafe/cumulus/consensus"
	"github.com/ChainSafe/cumulus/overseer"
	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/cumulus/types"
	"github.com/ChainSafe/gossamer/lib/common"
)

// Proposal is the result of building a block.
type Proposal struct {
	// Block is the built block.
	Block *types.Block
	// StorageChanges is an opaque handle over the state changes of the
	// block, produced by the proposer and consumed by the importer.
	StorageChanges interface{}
	// Proof is the execution proof recorded while building, nil if none was
	// recorded.
	Proof types.StorageProof
}

// Proposer builds a single block on top of the parent it was initialised
// with.
type Proposer interface {
	// Propose builds a block from the given inherent data within the given
	// deadline. When recordProof is true the returned proposal must carry an
	// execution proof.
	Propose(ctx context.Context, inherentData *types.InherentData,
		digest types.Digest, deadline time.Duration, recordProof bool) (*Proposal, error)
}

// ProposerFactory initialises a proposer on top of a parent header. It is the
// block-building strategy of the chain; the collator serialises access to it.
type ProposerFactory interface {
	Init(parent *types.Header) (Proposer, error)
}

// BlockImportParams describe a block to be imported into the local chain.
type BlockImportParams struct {
	Origin types.BlockOrigin
	Header *types.Header
	Body   types.Body
	// StorageChanges are the state changes produced while building the
	// block, as returned by the proposer.
	StorageChanges interface{}
	// MarkBest requests the imported block to become the local best block.
	// It is always false for collated blocks: the relay chain decides the
	// best block.
	MarkBest bool
}

// BlockImport imports blocks into the local chain state. The collator
// serialises access to it.
type BlockImport interface {
	ImportBlock(ctx context.Context, params *BlockImportParams) error
}

// BlockState answers import-status queries about locally known blocks.
type BlockState interface {
	BlockStatus(hash common.Hash) (types.BlockStatus, error)
}

// StateReader reads storage keys from a fixed state snapshot. Get returns
// nil for absent keys.
type StateReader interface {
	Get(key []byte) []byte
}

// StorageState gives scoped read-only access to the post-execution state of
// an imported block.
type StorageState interface {
	StateAt(blockHash common.Hash) (StateReader, error)
}

// InherentDataProvider populates the base inherent data every built block
// starts from, for example the timestamp inherent.
type InherentDataProvider interface {
	CreateInherentData() (*types.InherentData, error)
}

// RetrieveDownwardMessages retrieves the contents of the downward message
// queue at the given relay parent. A non-nil error means retrieval failed;
// an empty slice means the queue is empty.
type RetrieveDownwardMessages func(relayParent common.Hash) ([]primitives.DownwardMessage, error)

// RelayChainClient is the subset of a relay chain client the collator needs.
type RelayChainClient interface {
	consensus.HeadSource

	// DMQContents returns the downward message queue of the given parachain
	// at the given relay parent.
	DMQContents(relayParent common.Hash, paraID primitives.ParaID) ([]primitives.DownwardMessage, error)
}

// Announcer coordinates deferred candidate announcement: submissions are
// non-blocking and released only once external confirmation arrives.
type Announcer interface {
	WaitToAnnounce(blockHash, povHash common.Hash)
}

// OverseerHandler is the handle to the subsystem message bus the collator
// registers with at startup.
type OverseerHandler interface {
	SendMessage(ctx context.Context, msg interface{}) error
	RegisterSubsystem(sub overseer.Subsystem) error
}
