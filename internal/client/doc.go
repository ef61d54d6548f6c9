// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It ties the terminal UI to the storage it depends on and owns the
// process lifecycle: the UI runs in the foreground and storage is closed
// once it exits.
package client
