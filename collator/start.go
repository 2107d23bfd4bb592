// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"
	"fmt"

	"github.com/ChainSafe/cumulus/consensus"
	"github.com/ChainSafe/cumulus/network"
	"github.com/ChainSafe/cumulus/overseer"
	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/sr25519"
)

// Config holds everything needed to start a collator.
type Config struct {
	ParaID primitives.ParaID
	// Key signs collations on the wire.
	Key *sr25519.Keypair

	ProposerFactory      ProposerFactory
	InherentDataProvider InherentDataProvider
	BlockImport          BlockImport
	BlockState           BlockState
	StorageState         StorageState
	RelayChain           RelayChainClient
	OverseerHandler      OverseerHandler

	// AnnounceBlock publicises a confirmed candidate to the parachain
	// network.
	AnnounceBlock network.AnnounceBlock

	// FollowBlockState is the part of the chain state updated while
	// following the parent chain.
	FollowBlockState consensus.BlockState
}

func (cfg *Config) check() error {
	switch {
	case cfg.Key == nil:
		return ErrNilKeypair
	case cfg.ProposerFactory == nil:
		return ErrNilProposerFactory
	case cfg.InherentDataProvider == nil:
		return ErrNilInherentDataProvider
	case cfg.BlockImport == nil:
		return ErrNilBlockImport
	case cfg.BlockState == nil:
		return ErrNilBlockState
	case cfg.StorageState == nil:
		return ErrNilStorageState
	case cfg.RelayChain == nil:
		return ErrNilRelayChainClient
	case cfg.OverseerHandler == nil:
		return ErrNilOverseerHandler
	case cfg.AnnounceBlock == nil:
		return ErrNilAnnounceBlock
	}
	return nil
}

// StartCollator wires the collator together and registers it with the
// subsystem message bus: it starts following the parent chain, registers
// the deferred-announcement subsystem, then sends the collation generation
// initialisation followed by the collate-on instruction. Both messages must
// be acknowledged before the collator is considered live; failure of either
// is fatal to startup. Individual candidate production failures later on
// are never escalated to this level.
func StartCollator(ctx context.Context, cfg Config) error {
	if err := cfg.check(); err != nil {
		return err
	}

	follow, err := consensus.NewService(consensus.Config{
		ParaID:     cfg.ParaID,
		HeadSource: cfg.RelayChain,
		BlockState: cfg.FollowBlockState,
	})
	if err != nil {
		return fmt.Errorf("creating the follow service: %w", err)
	}

	if err := follow.Start(); err != nil {
		return fmt.Errorf("could not start following the parent chain: %w", err)
	}

	waitToAnnounce := network.NewWaitToAnnounce(cfg.AnnounceBlock)
	if err := cfg.OverseerHandler.RegisterSubsystem(waitToAnnounce); err != nil {
		return fmt.Errorf("registering the announcement subsystem: %w", err)
	}

	retrieveDMQContents := func(relayParent common.Hash) ([]primitives.DownwardMessage, error) {
		return cfg.RelayChain.DMQContents(relayParent, cfg.ParaID)
	}

	collator := newCollator(cfg.ParaID, cfg.ProposerFactory,
		cfg.InherentDataProvider, cfg.BlockImport, cfg.BlockState,
		cfg.StorageState, waitToAnnounce, retrieveDMQContents)

	config := &primitives.CollationGenerationConfig{
		Key:    cfg.Key,
		ParaID: cfg.ParaID,
		Collator: func(ctx context.Context, relayParent common.Hash,
			validationData *primitives.ValidationData) *primitives.Collation {
			return collator.ProduceCandidate(ctx, relayParent, *validationData)
		},
	}

	err = cfg.OverseerHandler.SendMessage(ctx,
		overseer.CollationGenerationMessage{Config: config})
	if err != nil {
		return fmt.Errorf("sending the collation generation initialise message: %w", err)
	}

	err = cfg.OverseerHandler.SendMessage(ctx, overseer.CollateOn{ParaID: cfg.ParaID})
	if err != nil {
		return fmt.Errorf("sending the collate-on message: %w", err)
	}

	logger.Info("collator started", "para id", cfg.ParaID)
	return nil
}
