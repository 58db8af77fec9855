// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"github.com/luxfi/surety/config"

	"github.com/luxfi/log"
)

// Backend carries the immutable dependencies shared by every transaction
// execution.
type Backend struct {
	Config *config.Config
	Log    log.Logger
}
