// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package network holds the collator-side pieces of the collation
// networking protocol, most notably deferred block announcement.
package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChainSafe/cumulus/overseer"
	"github.com/ChainSafe/gossamer/lib/common"
	log "github.com/ChainSafe/log15"
)

var logger = log.New("pkg", "cumulus-network")

// AnnounceBlock publicises a block to the parachain network, together with
// opaque associated data.
type AnnounceBlock func(blockHash common.Hash, associatedData []byte)

// WaitToAnnounce defers the announcement of produced candidates until the
// relay chain confirms their validity by seconding them. Submissions are
// non-blocking; confirmations arrive later as CollationSeconded messages on
// the overseer bus.
type WaitToAnnounce struct {
	announce AnnounceBlock

	mu sync.Mutex
	// pending maps a produced block hash to the hash of its
	// proof-of-validity, until the block is seconded.
	pending map[common.Hash]common.Hash
}

// NewWaitToAnnounce creates a WaitToAnnounce calling the given announcement
// function once candidates are confirmed.
func NewWaitToAnnounce(announce AnnounceBlock) *WaitToAnnounce {
	return &WaitToAnnounce{
		announce: announce,
		pending:  make(map[common.Hash]common.Hash),
	}
}

// Name implements overseer.Subsystem.
func (w *WaitToAnnounce) Name() overseer.SubsystemName {
	return overseer.CollatorProtocol
}

// Run processes overseer messages until the context is cancelled.
func (w *WaitToAnnounce) Run(ctx context.Context, messages <-chan interface{}) error {
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.processMessage(msg)
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *WaitToAnnounce) processMessage(msg interface{}) {
	switch msg := msg.(type) {
	case overseer.CollateOn:
		logger.Info("collating", "para id", msg.ParaID)
	case overseer.CollationSeconded:
		w.CollationSeconded(msg.BlockHash)
	default:
		logger.Warn("unexpected message on collator protocol", "type", fmt.Sprintf("%T", msg))
	}
}

// WaitToAnnounce registers a (block hash, proof-of-validity hash) pair for
// announcement once the block is seconded. It never blocks on the
// confirmation.
func (w *WaitToAnnounce) WaitToAnnounce(blockHash, povHash common.Hash) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[blockHash] = povHash
	logger.Debug("waiting for block to be seconded before announcing",
		"block hash", blockHash, "pov hash", povHash)
}

// CollationSeconded releases the announcement of the given block, if it is
// pending. Each pending block is announced at most once.
func (w *WaitToAnnounce) CollationSeconded(blockHash common.Hash) {
	w.mu.Lock()
	povHash, has := w.pending[blockHash]
	if has {
		delete(w.pending, blockHash)
	}
	w.mu.Unlock()

	if !has {
		logger.Debug("seconded block is not pending announcement", "block hash", blockHash)
		return
	}

	w.announce(blockHash, povHash[:])
	logger.Info("announcing block", "block hash", blockHash, "pov hash", povHash)
}
