// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
)

// thanks to https://stackoverflow.com/a/49148866/215713
func isWritable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}

	// Check if the user bit is enabled in file permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}
