// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "single request")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "within maximum")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 11, 10), "above maximum")
}

func TestLimitBeyondBurst(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 20, 50), "larger than burst")
}
