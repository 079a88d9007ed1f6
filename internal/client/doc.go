// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle: the login flow runs until the user authenticates or
// chooses guest browsing, then the feed browser runs until logout or quit.
package client
