// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package primitives

import "github.com/ChainSafe/cumulus/types"

// Inherent identifiers for the inherents every parachain block built with
// this library must contain.
var (
	// ValidationDataIdentifier keys the relay-chain validation parameters
	// inherent.
	ValidationDataIdentifier = types.InherentIdentifier{'v', 'a', 'l', 'f', 'u', 'n', 'p', '0'}
	// DownwardMessagesIdentifier keys the downward messages inherent.
	DownwardMessagesIdentifier = types.InherentIdentifier{'c', 'u', 'm', 'd', 'm', 's', 'g', 's'}
)

// Well-known storage keys the parachain runtime writes its relay-chain-facing
// outputs to. They are read from the post-execution state of every produced
// block.
var (
	// UpwardMessagesKey stores the SCALE-encoded list of upward messages sent
	// by the block.
	UpwardMessagesKey = []byte(":cumulus_upward_messages:")
	// NewValidationCodeKey stores a new validation code blob, raw, if the
	// block scheduled a runtime upgrade.
	NewValidationCodeKey = []byte(":cumulus_new_validation_code:")
	// ProcessedDownwardMessagesKey stores the SCALE-encoded count of downward
	// messages processed by the block.
	ProcessedDownwardMessagesKey = []byte(":cumulus_processed_downward_messages:")
)
