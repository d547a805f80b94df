// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


package main

import (
	"github.com/netautomate/netorca-cli/internal/commands"
)

func main() {
	commands.Execute()
}
