// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gatt holds the enumerations generated from the GATT definitions
// under specs/.
package gatt

//go:generate go run ../../cmd/gattgen generate all --config ../../gattgen.yaml
