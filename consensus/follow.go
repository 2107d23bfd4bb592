// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package consensus follows the parent chain's view of the parachain: the
// relay chain, not local fork choice, decides which parachain block is best.
package consensus

import (
	"context"
	"errors"

	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/cumulus/types"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	log "github.com/ChainSafe/log15"
)

var logger = log.New("pkg", "cumulus-consensus")

var (
	// ErrNilHeadSource is returned when no relay chain head source is given.
	ErrNilHeadSource = errors.New("relay chain head source is nil")
	// ErrNilBlockState is returned when no block state is given.
	ErrNilBlockState = errors.New("block state is nil")
)

// HeadSource subscribes to the relay chain's knowledge of the parachain's
// best head.
type HeadSource interface {
	// NewBestHeads emits the parachain head data persisted on the relay
	// chain every time it changes. The channel is closed when the context is
	// cancelled.
	NewBestHeads(ctx context.Context) (<-chan primitives.HeadData, error)
}

// BlockState is the part of the local chain state the follower updates.
type BlockState interface {
	HasHeader(hash common.Hash) (bool, error)
	SetBestBlockHash(hash common.Hash) error
}

// Config holds the collaborators of the follow service.
type Config struct {
	ParaID     primitives.ParaID
	HeadSource HeadSource
	BlockState BlockState
}

// Service follows the parent chain and marks the parachain block it reports
// as best, whenever that block is known locally.
type Service struct {
	paraID     primitives.ParaID
	headSource HeadSource
	blockState BlockState

	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	done    chan struct{}
}

// NewService creates a follow service from the given config.
func NewService(cfg Config) (*Service, error) {
	if cfg.HeadSource == nil {
		return nil, ErrNilHeadSource
	}
	if cfg.BlockState == nil {
		return nil, ErrNilBlockState
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		paraID:     cfg.ParaID,
		headSource: cfg.HeadSource,
		blockState: cfg.BlockState,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}, nil
}

// Start subscribes to the parent chain and begins following it.
func (s *Service) Start() error {
	heads, err := s.headSource.NewBestHeads(s.ctx)
	if err != nil {
		s.cancel()
		return err
	}

	s.started = true
	go s.run(heads)
	return nil
}

// Stop stops following the parent chain.
func (s *Service) Stop() error {
	s.cancel()
	if s.started {
		<-s.done
	}
	return nil
}

func (s *Service) run(heads <-chan primitives.HeadData) {
	defer close(s.done)

	logger.Info("following the parent chain", "para id", s.paraID)

	for {
		select {
		case head, ok := <-heads:
			if !ok {
				return
			}
			s.handleNewBestHead(head)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Service) handleNewBestHead(head primitives.HeadData) {
	var header types.Header
	if err := scale.Unmarshal(head, &header); err != nil {
		logger.Warn("failed to decode parachain head from the parent chain", "error", err)
		return
	}

	hash := header.Hash()
	has, err := s.blockState.HasHeader(hash)
	if err != nil {
		logger.Error("failed to check for parent chain's best block", "hash", hash, "error", err)
		return
	}

	if !has {
		logger.Debug("parent chain reported a best block not known locally", "hash", hash)
		return
	}

	if err := s.blockState.SetBestBlockHash(hash); err != nil {
		logger.Error("failed to set the best block", "hash", hash, "error", err)
		return
	}

	logger.Debug("parent chain updated the best block", "hash", hash, "number", header.Number)
}
