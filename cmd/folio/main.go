// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command folio runs the portfolio API and its maintenance tasks.
//
// # Commands
//
//   - serve: HTTP API with graceful shutdown.
//   - migrate: postgres document table migrations (up, down, version).
//   - resume: render the résumé PDF to a file.
//   - import-posts: load markdown files as draft blog posts.
//   - hash-password: bcrypt hash for DEV_ADMIN_PASSWORD_HASH.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
