// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package check_test

import (
	"testing"

	"github.com/shocklang/shocked/utils/check"
	"github.com/shocklang/shocked/utils/errors"
	"gotest.tools/v3/assert"
)

func TestChecks(t *testing.T) {
	t.Parallel()
	check.Check(true, "fine")
	check.Checkf(true, "fine %d", 1)
	check.NoErr(nil, "fine")
	assert.Equal(t, check.Must(3, nil), 3)

	assertPanics(t, "check failed: boom", func() { check.Check(false, "boom") })
	assertPanics(t, "check failed: boom 2", func() { check.Checkf(false, "boom %d", 2) })
	assertPanics(t, "check failed: Must: bad", func() { check.Must(0, errors.New("bad")) })
}

func assertPanics(t *testing.T, expected string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		assert.Equal(t, r, expected)
	}()
	f()
}
