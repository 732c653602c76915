// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the support CLI runtime.
//
// It issues the support token and then hands the terminal to the UI.
package client
