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

package actor

import (
	"time"

	"github.com/troupe-go/troupe/log"
)

// spawnConfig carries the per-spawn settings.
type spawnConfig struct {
	name           string
	logger         log.Logger
	initMaxRetries int
	initTimeout    time.Duration
}

func newSpawnConfig(opts ...SpawnOption) *spawnConfig {
	cfg := &spawnConfig{
		logger:         log.DefaultLogger,
		initMaxRetries: 1,
		initTimeout:    time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// SpawnOption configures a spawn.
type SpawnOption func(*spawnConfig)

// WithName records a display name for the actor. Purely cosmetic.
func WithName(name string) SpawnOption {
	return func(cfg *spawnConfig) {
		cfg.name = name
	}
}

// WithLogger sets the logger handed to the actor's hooks and handlers.
func WithLogger(logger log.Logger) SpawnOption {
	return func(cfg *spawnConfig) {
		cfg.logger = logger
	}
}

// WithInitMaxRetries sets how many times PreStart is attempted before the
// spawn is aborted.
func WithInitMaxRetries(max int) SpawnOption {
	return func(cfg *spawnConfig) {
		cfg.initMaxRetries = max
	}
}

// WithInitTimeout sets the retry window used when PreStart is retried.
func WithInitTimeout(timeout time.Duration) SpawnOption {
	return func(cfg *spawnConfig) {
		cfg.initTimeout = timeout
	}
}
