// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the docs view client application runtime.
//
// It wires the terminal UI and the view sync services into a single process
// lifecycle, or performs a one-shot fetch that prints the view as JSON.
package client
