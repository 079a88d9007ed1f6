// SPDX-License-Identifier: Apache-2.0

package client

// Client is the lifecycle contract of a runnable client application: Run
// blocks until the user exits.
type Client interface {
	Run() error
}
