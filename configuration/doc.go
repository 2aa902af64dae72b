// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the config file
//
// the configuration file is a Lua script whose final expression is a
// table; the table is mapped onto the caller's structure using the
// gluamapper field tags
package configuration
