// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the slot validation
// service.
//
// Commands are built with cobra. Each one reads slot payloads from JSON or
// YAML files, sends them through the client services over HTTP or gRPC and
// prints the results as JSON.
package client
