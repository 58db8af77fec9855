// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/luxfi/ids"
)

// The append-only identity lists are persisted as fixed-width
// concatenations; order is significant and duplicates are allowed.

func packShortIDs(list []ids.ShortID) []byte {
	bytes := make([]byte, 0, len(list)*ids.ShortIDLen)
	for _, id := range list {
		bytes = append(bytes, id[:]...)
	}
	return bytes
}

func unpackShortIDs(bytes []byte) ([]ids.ShortID, error) {
	if len(bytes)%ids.ShortIDLen != 0 {
		return nil, fmt.Errorf("invalid identity list length %d", len(bytes))
	}
	list := make([]ids.ShortID, 0, len(bytes)/ids.ShortIDLen)
	for i := 0; i < len(bytes); i += ids.ShortIDLen {
		var id ids.ShortID
		copy(id[:], bytes[i:i+ids.ShortIDLen])
		list = append(list, id)
	}
	return list, nil
}

func packIDs(list []ids.ID) []byte {
	bytes := make([]byte, 0, len(list)*ids.IDLen)
	for _, id := range list {
		bytes = append(bytes, id[:]...)
	}
	return bytes
}

func unpackIDs(bytes []byte) ([]ids.ID, error) {
	if len(bytes)%ids.IDLen != 0 {
		return nil, fmt.Errorf("invalid key list length %d", len(bytes))
	}
	list := make([]ids.ID, 0, len(bytes)/ids.IDLen)
	for i := 0; i < len(bytes); i += ids.IDLen {
		var id ids.ID
		copy(id[:], bytes[i:i+ids.IDLen])
		list = append(list, id)
	}
	return list, nil
}
