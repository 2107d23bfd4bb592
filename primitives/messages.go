// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package primitives

// DownwardMessage is an opaque message sent from the relay chain down to a
// parachain.
type DownwardMessage []byte

// UpwardMessage is an opaque message sent from a parachain up to the relay
// chain.
type UpwardMessage []byte

// OutboundHrmpMessage is a horizontal message sent from one parachain to a
// sibling parachain through the relay chain.
type OutboundHrmpMessage struct {
	Recipient ParaID `scale:"1"`
	Data      []byte `scale:"2"`
}
