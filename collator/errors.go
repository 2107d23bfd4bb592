// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import "errors"

var (
	// ErrNilProposerFactory is returned when no proposer factory is given.
	ErrNilProposerFactory = errors.New("proposer factory is nil")
	// ErrNilBlockImport is returned when no block import is given.
	ErrNilBlockImport = errors.New("block import is nil")
	// ErrNilBlockState is returned when no block state is given.
	ErrNilBlockState = errors.New("block state is nil")
	// ErrNilStorageState is returned when no storage state is given.
	ErrNilStorageState = errors.New("storage state is nil")
	// ErrNilInherentDataProvider is returned when no inherent data provider
	// is given.
	ErrNilInherentDataProvider = errors.New("inherent data provider is nil")
	// ErrNilRelayChainClient is returned when no relay chain client is given.
	ErrNilRelayChainClient = errors.New("relay chain client is nil")
	// ErrNilOverseerHandler is returned when no overseer handler is given.
	ErrNilOverseerHandler = errors.New("overseer handler is nil")
	// ErrNilAnnounceBlock is returned when no announce function is given.
	ErrNilAnnounceBlock = errors.New("announce block function is nil")
	// ErrNilKeypair is returned when no collator keypair is given.
	ErrNilKeypair = errors.New("collator keypair is nil")

	// ErrMissingProof is returned when the proposer completes without the
	// requested execution proof. This is a contract violation on the
	// proposer's side.
	ErrMissingProof = errors.New("proposer did not return the requested proof")
)
