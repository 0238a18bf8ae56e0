// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	ptr := GetBytes()
	assert.Empty(t, *ptr)
	assert.GreaterOrEqual(t, cap(*ptr), initializeBufSize)

	*ptr = append(*ptr, "CPU utilization: 42 %\n"...)
	PutBytes(ptr)
	assert.Empty(t, *ptr)

	again := GetBytes()
	assert.Empty(t, *again)
	PutBytes(again)
}

func TestPutBytes_Oversized(t *testing.T) {
	big := make([]byte, 0, maxRecycleSize+1)
	PutBytes(&big)
	assert.Equal(t, maxRecycleSize+1, cap(big))

	PutBytes(nil)
}
