// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"fmt"

	"github.com/ChainSafe/cumulus/primitives"
	"github.com/ChainSafe/cumulus/types"
	"github.com/ChainSafe/gossamer/lib/common"
)

// inherentData assembles the input bundle for the block builder: the base
// inherents, the relay chain validation parameters and the downward
// messages retrieved for the given relay parent. Any failure aborts the
// whole assembly; there is no partially filled bundle.
func (c *Collator) inherentData(validationData primitives.ValidationData,
	relayParent common.Hash) (*types.InherentData, error) {
	inherentData, err := c.inherentDataProvider.CreateInherentData()
	if err != nil {
		logger.Error("failed to create inherent data", "error", err)
		return nil, fmt.Errorf("creating inherent data: %w", err)
	}

	err = inherentData.SetInherent(primitives.ValidationDataIdentifier, validationData)
	if err != nil {
		logger.Error("failed to put validation data into inherent data", "error", err)
		return nil, fmt.Errorf("setting validation data inherent: %w", err)
	}

	// an empty-but-successful retrieval yields an empty list inherent; only
	// a failed retrieval aborts the assembly
	downwardMessages, err := c.retrieveDMQContents(relayParent)
	if err != nil {
		logger.Error("failed to retrieve downward messages",
			"relay parent", relayParent, "error", err)
		return nil, fmt.Errorf("retrieving downward messages: %w", err)
	}
	if downwardMessages == nil {
		downwardMessages = []primitives.DownwardMessage{}
	}

	err = inherentData.SetInherent(primitives.DownwardMessagesIdentifier, downwardMessages)
	if err != nil {
		logger.Error("failed to put downward messages into inherent data", "error", err)
		return nil, fmt.Errorf("setting downward messages inherent: %w", err)
	}

	return inherentData, nil
}
