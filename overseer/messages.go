// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package overseer

import (
	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/gossamer/lib/common"
)

// SubsystemName identifies a subsystem on the message bus.
type SubsystemName string

const (
	// CollationGeneration is the subsystem holding registered collators and
	// invoking them on relay chain requests.
	CollationGeneration SubsystemName = "collation-generation"
	// CollatorProtocol is the collator side of the collation networking
	// protocol, including candidate announcement.
	CollatorProtocol SubsystemName = "collator-protocol"
)

// CollationGenerationMessage initialises the collation generation subsystem
// with a collator callback.
type CollationGenerationMessage struct {
	Config *primitives.CollationGenerationConfig
}

// CollateOn instructs the collator protocol subsystem to begin collating for
// the given parachain.
type CollateOn struct {
	ParaID primitives.ParaID
}

// CollationSeconded notifies that a relay chain validator seconded the
// collation built on top of the given parachain block.
type CollationSeconded struct {
	BlockHash common.Hash
}
