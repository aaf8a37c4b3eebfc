/*
 * MIT License
 *
 * Copyright (c) 2023-2026 Troupe Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscardLogger(t *testing.T) {
	// none of these may touch any output
	DiscardLogger.Debug("ignored")
	DiscardLogger.Debugf("ignored %d", 1)
	DiscardLogger.Info("ignored")
	DiscardLogger.Infof("ignored %d", 1)
	DiscardLogger.Warn("ignored")
	DiscardLogger.Warnf("ignored %d", 1)
	DiscardLogger.Error("ignored")
	DiscardLogger.Errorf("ignored %d", 1)

	assert.Equal(t, InfoLevel, DiscardLogger.LogLevel())
	assert.Equal(t, []io.Writer{io.Discard}, DiscardLogger.LogOutput())

	assert.Panics(t, func() {
		DiscardLogger.Panic("boom")
	})
	assert.Panics(t, func() {
		DiscardLogger.Panicf("boom %d", 1)
	})
}
