// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package primitives contains the parachain primitives shared between the
// collator, the relay chain client and the subsystem message bus.
package primitives

import "github.com/ChainSafe/gossamer/lib/common"

// ParaID is the identifier of a parachain registered on the relay chain.
type ParaID uint32

// RelayChainBlockNumber is a block number relative to the relay chain.
type RelayChainBlockNumber uint32

// HeadData is the SCALE-encoded header of a parachain block, as persisted on
// the relay chain.
type HeadData []byte

// ValidationCode is a parachain runtime (validation function) blob.
type ValidationCode []byte

// PersistedValidationData are the validation parameters persisted on the
// relay chain for a given relay parent. They are supplied by the relay chain
// with every candidate request.
type PersistedValidationData struct {
	// ParentHead is the encoded header of the last parachain block known to
	// the relay chain.
	ParentHead HeadData `scale:"1"`
	// BlockNumber is the relay-parent-relative block number of the request.
	BlockNumber RelayChainBlockNumber `scale:"2"`
	// RelayStorageRoot is the storage root of the relay parent.
	RelayStorageRoot common.Hash `scale:"3"`
	// MaxPovSize is the maximum proof-of-validity size accepted by the relay
	// chain, in bytes.
	MaxPovSize uint32 `scale:"4"`
}

// ValidationData bundles the relay-chain-provided parameters a parachain
// block builder needs. Constructed by the relay chain per candidate request,
// consumed once.
type ValidationData struct {
	Persisted PersistedValidationData `scale:"1"`
}
