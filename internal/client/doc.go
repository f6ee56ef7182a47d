// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package client implements the interactive gallery client runtime.
//
// It wires terminal UI flows, the session, and the gallery services into a
// single process lifecycle: restore a cached session if one is still valid,
// otherwise run the sign-in flow, then hand control to the gallery screens.
package client
