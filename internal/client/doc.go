// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It fetches the requested payments through the payments API adapter,
// a bounded number at a time, and prints one JSON line per payment.
package client
