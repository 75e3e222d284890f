// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package main

import (
	"golang.org/x/sys/unix"
)

func isWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
