// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/cumulus/types"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/stretchr/testify/require"
)

// testProposerFactory builds a block with one inherent extrinsic on top of
// the parent it is initialised with, recording what it received.
type testProposerFactory struct {
	initErr    error
	proposeErr error
	// omitProof makes the proposer complete without an execution proof even
	// though one was requested.
	omitProof bool

	initialised  int
	lastParent   *types.Header
	lastInherent *types.InherentData
}

func (f *testProposerFactory) Init(parent *types.Header) (Proposer, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}

	f.initialised++
	f.lastParent = parent
	return &testProposer{factory: f, parent: parent}, nil
}

type testProposer struct {
	factory *testProposerFactory
	parent  *types.Header
}

func (p *testProposer) Propose(_ context.Context, inherentData *types.InherentData,
	digest types.Digest, _ time.Duration, recordProof bool) (*Proposal, error) {
	if p.factory.proposeErr != nil {
		return nil, p.factory.proposeErr
	}

	p.factory.lastInherent = inherentData

	header := types.NewHeader(p.parent.Hash(), common.Hash{}, common.Hash{},
		p.parent.Number+1, digest)
	body := types.Body{types.Extrinsic([]byte("inherent"))}

	proposal := &Proposal{
		Block:          types.NewBlock(*header, body),
		StorageChanges: "storage changes",
	}
	if recordProof && !p.factory.omitProof {
		proposal.Proof = types.StorageProof{[]byte("trie node")}
	}

	return proposal, nil
}

// testBlockImport records import requests.
type testBlockImport struct {
	err error

	mu       sync.Mutex
	imported []*BlockImportParams
}

func (bi *testBlockImport) ImportBlock(_ context.Context, params *BlockImportParams) error {
	if bi.err != nil {
		return bi.err
	}

	bi.mu.Lock()
	defer bi.mu.Unlock()
	bi.imported = append(bi.imported, params)
	return nil
}

func (bi *testBlockImport) importedCount() int {
	bi.mu.Lock()
	defer bi.mu.Unlock()
	return len(bi.imported)
}

// testBlockState returns a fixed status for every queried hash.
type testBlockState struct {
	status types.BlockStatus
	err    error
}

func (bs *testBlockState) BlockStatus(common.Hash) (types.BlockStatus, error) {
	if bs.err != nil {
		return types.BlockStatusUnknown, bs.err
	}
	return bs.status, nil
}

// memoryState is an in-memory StorageState serving one state snapshot for
// all block hashes.
type memoryState struct {
	err error

	mu            sync.Mutex
	entries       map[string][]byte
	lastRequested common.Hash
}

func newMemoryState() *memoryState {
	return &memoryState{entries: make(map[string][]byte)}
}

func (s *memoryState) set(key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[string(key)] = value
}

func (s *memoryState) StateAt(blockHash common.Hash) (StateReader, error) {
	if s.err != nil {
		return nil, s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRequested = blockHash
	return s, nil
}

func (s *memoryState) Get(key []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, has := s.entries[string(key)]
	if !has {
		return nil
	}
	return value
}

// testInherentProvider returns an empty base bundle.
type testInherentProvider struct {
	err error
}

func (p *testInherentProvider) CreateInherentData() (*types.InherentData, error) {
	if p.err != nil {
		return nil, p.err
	}
	return types.NewInherentData(), nil
}

// testAnnouncer records submitted (block hash, pov hash) pairs.
type testAnnouncer struct {
	mu        sync.Mutex
	submitted [][2]common.Hash
}

func (a *testAnnouncer) WaitToAnnounce(blockHash, povHash common.Hash) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.submitted = append(a.submitted, [2]common.Hash{blockHash, povHash})
}

func (a *testAnnouncer) submittedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.submitted)
}

// testCollator bundles a collator with all its fakes.
type testCollator struct {
	collator    *Collator
	factory     *testProposerFactory
	blockImport *testBlockImport
	state       *testBlockState
	storage     *memoryState
	announcer   *testAnnouncer

	dmqContents []primitives.DownwardMessage
	dmqErr      error
}

func newTestCollator() *testCollator {
	tc := &testCollator{
		factory:     &testProposerFactory{},
		blockImport: &testBlockImport{},
		state:       &testBlockState{status: types.BlockStatusInChainWithState},
		storage:     newMemoryState(),
		announcer:   &testAnnouncer{},
		dmqContents: []primitives.DownwardMessage{},
	}

	retrieve := func(common.Hash) ([]primitives.DownwardMessage, error) {
		if tc.dmqErr != nil {
			return nil, tc.dmqErr
		}
		return tc.dmqContents, nil
	}

	tc.collator = newCollator(100, tc.factory, &testInherentProvider{},
		tc.blockImport, tc.state, tc.storage, tc.announcer, retrieve)
	return tc
}

// genesisValidationData returns validation data carrying the encoding of a
// genesis header as the last known parachain head, alongside that header.
func genesisValidationData(t *testing.T, relayBlockNumber primitives.RelayChainBlockNumber,
) (primitives.ValidationData, *types.Header) {
	t.Helper()

	genesis := types.NewHeader(common.Hash{}, common.Hash{}, common.Hash{}, 0, nil)
	encoded, err := scale.Marshal(*genesis)
	require.NoError(t, err)

	return primitives.ValidationData{
		Persisted: primitives.PersistedValidationData{
			ParentHead:  encoded,
			BlockNumber: relayBlockNumber,
		},
	}, genesis
}
