// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the Lendit HTTP server: startup, signal handling and
// graceful shutdown.
package server
