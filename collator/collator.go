// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package collator implements the parachain candidate production pipeline:
// on every relay chain request it checks that the requested parent is
// buildable, assembles the inherent data, drives the block-building
// strategy, imports the produced block, extracts the chain-defined outputs
// from its post-execution state and hands the candidate over for deferred
// announcement.
package collator

import (
	"context"
	"sync"
	"time"

	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/cumulus/types"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	log "github.com/ChainSafe/log15"

	ethmetrics "github.com/ethereum/go-ethereum/metrics"
)

var logger = log.New("pkg", "cumulus-collator")

const (
	// proposeDeadline bounds the wall-clock time the proposer may spend
	// building one block.
	proposeDeadline = 500 * time.Millisecond

	produceCandidateTimer  = "cumulus/collator/candidate/produced"
	produceCandidateErrors = "cumulus/collator/candidate/errors"
)

// Collator produces parachain block candidates on request. All candidate
// production runs share the same proposer factory and block import; access
// to those two is serialised, everything else runs concurrently.
type Collator struct {
	paraID primitives.ParaID

	proposerLock    sync.Mutex
	proposerFactory ProposerFactory

	importLock  sync.Mutex
	blockImport BlockImport

	inherentDataProvider InherentDataProvider
	blockState           BlockState
	storageState         StorageState
	waitToAnnounce       Announcer
	retrieveDMQContents  RetrieveDownwardMessages
}

func newCollator(paraID primitives.ParaID, proposerFactory ProposerFactory,
	inherentDataProvider InherentDataProvider, blockImport BlockImport,
	blockState BlockState, storageState StorageState, waitToAnnounce Announcer,
	retrieveDMQContents RetrieveDownwardMessages) *Collator {
	// enables the go-ethereum metrics around candidate production
	ethmetrics.Enabled = true

	return &Collator{
		paraID:               paraID,
		proposerFactory:      proposerFactory,
		inherentDataProvider: inherentDataProvider,
		blockImport:          blockImport,
		blockState:           blockState,
		storageState:         storageState,
		waitToAnnounce:       waitToAnnounce,
		retrieveDMQContents:  retrieveDMQContents,
	}
}

// ProduceCandidate produces a candidate for the given relay parent, built on
// top of the parachain head carried in the validation data. It returns nil
// when no candidate can be produced this round; the relay chain is expected
// to re-request. Local chain state is never left inconsistent: a block is
// either fully imported or not imported at all.
func (c *Collator) ProduceCandidate(ctx context.Context, relayParent common.Hash,
	validationData primitives.ValidationData) *primitives.Collation {
	start := time.Now()

	var lastHead types.Header
	err := scale.Unmarshal(validationData.Persisted.ParentHead, &lastHead)
	if err != nil {
		logger.Error("could not decode the head data", "error", err)
		return nil
	}

	lastHeadHash := lastHead.Hash()
	if !c.checkBlockStatus(lastHeadHash) {
		return nil
	}

	logger.Info("starting collation", "para id", c.paraID,
		"relay parent", relayParent, "parent", lastHeadHash)

	proposal, err := c.propose(ctx, &lastHead, validationData, relayParent)
	if err != nil {
		logger.Error("proposing failed", "error", err)
		candidateErrors().Inc(1)
		return nil
	}

	header := proposal.Block.Header
	blockHash := header.Hash()

	// the proof-of-validity payload for the validators
	blockData := types.NewParachainBlockData(header, proposal.Block.Body, proposal.Proof)

	if err := c.importBlock(ctx, proposal); err != nil {
		logger.Error("error importing built block",
			"parent", header.ParentHash, "error", err)
		candidateErrors().Inc(1)
		return nil
	}

	collation, err := c.buildCollation(blockData, blockHash,
		validationData.Persisted.BlockNumber)
	if err != nil {
		logger.Error("failed to build collation from the built block",
			"block hash", blockHash, "error", err)
		candidateErrors().Inc(1)
		return nil
	}

	povHash, err := collation.ProofOfValidity.Hash()
	if err != nil {
		logger.Error("failed to hash the proof-of-validity", "error", err)
		candidateErrors().Inc(1)
		return nil
	}

	c.waitToAnnounce.WaitToAnnounce(blockHash, povHash)

	logger.Info("produced proof-of-validity candidate",
		"pov hash", povHash, "block hash", blockHash)
	ethmetrics.GetOrRegisterTimer(produceCandidateTimer, nil).Update(time.Since(start))

	return collation
}

// propose assembles the inherents, then drives the block-building strategy
// under exclusive access: initialise against the parent, build with a fixed
// deadline and a requested execution proof. Only the initialise-and-propose
// section is serialised; inherent assembly of concurrent requests runs in
// parallel.
func (c *Collator) propose(ctx context.Context, parent *types.Header,
	validationData primitives.ValidationData, relayParent common.Hash) (*Proposal, error) {
	inherentData, err := c.inherentData(validationData, relayParent)
	if err != nil {
		return nil, err
	}

	c.proposerLock.Lock()
	defer c.proposerLock.Unlock()

	proposer, err := c.proposerFactory.Init(parent)
	if err != nil {
		return nil, err
	}

	proposal, err := proposer.Propose(ctx, inherentData, nil, proposeDeadline, true)
	if err != nil {
		return nil, err
	}

	if proposal.Proof == nil {
		return nil, ErrMissingProof
	}

	return proposal, nil
}

// importBlock imports the proposed block under exclusive access to the
// block import. The best block is determined by the relay chain, so the
// block is never marked best by local rules.
func (c *Collator) importBlock(ctx context.Context, proposal *Proposal) error {
	params := &BlockImportParams{
		Origin:         types.BlockOriginOwn,
		Header:         &proposal.Block.Header,
		Body:           proposal.Block.Body,
		StorageChanges: proposal.StorageChanges,
		MarkBest:       false,
	}

	c.importLock.Lock()
	defer c.importLock.Unlock()

	return c.blockImport.ImportBlock(ctx, params)
}

func candidateErrors() ethmetrics.Counter {
	return ethmetrics.GetOrRegisterCounter(produceCandidateErrors, nil)
}
