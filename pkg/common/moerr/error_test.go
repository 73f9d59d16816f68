// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMoErrCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		err      error
		code     uint16
		expected bool
	}{
		{
			name:     "nil error is ok",
			err:      nil,
			code:     Ok,
			expected: true,
		},
		{
			name:     "nil error is not internal",
			err:      nil,
			code:     ErrInternal,
			expected: false,
		},
		{
			name:     "bad config",
			err:      NewBadConfig(ctx, "unknown kind %q", "btree"),
			code:     ErrBadConfig,
			expected: true,
		},
		{
			name:     "wrapped invalid arg",
			err:      fmt.Errorf("lookup: %w", NewInvalidArg(ctx, "hash", "md5")),
			code:     ErrInvalidArg,
			expected: true,
		},
		{
			name:     "standard error",
			err:      errors.New("some error"),
			code:     ErrInternal,
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMoErrCode(tt.err, tt.code))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, "invalid argument hash, bad value md5", NewInvalidArg(ctx, "hash", "md5").Error())
	require.Equal(t, "file a.txt is not found", NewFileNotFound(ctx, "a.txt").Error())
	require.Equal(t, "invalid configuration: capacity 0", NewBadConfig(ctx, "capacity %d", 0).Error())
	require.Equal(t, "internal error: boom", NewInternalError(ctx, "boom").Error())

	err := NewInvalidInput(ctx, "empty token file").WithDetail("words.txt")
	require.Equal(t, "invalid input: empty token file", err.Error())
	require.Equal(t, "invalid input: empty token file: words.txt", err.Display())
	require.False(t, err.Succeeded())
}

func TestNewErrorUnknownCodePanics(t *testing.T) {
	require.Panics(t, func() {
		_ = newError(context.Background(), 1234)
	})
}

func TestConvertGoError(t *testing.T) {
	ctx := context.Background()
	require.Nil(t, ConvertGoError(ctx, nil))

	mo := NewInvalidInput(ctx, "x")
	require.Equal(t, mo, ConvertGoError(ctx, mo))

	require.True(t, IsMoErrCode(ConvertGoError(ctx, io.EOF), ErrUnexpectedEOF))

	_, err := os.Open("/definitely/not/here.txt")
	converted := ConvertGoError(ctx, err)
	require.True(t, IsMoErrCode(converted, ErrFileNotFound))
	require.Equal(t, "file /definitely/not/here.txt is not found", converted.Error())

	require.True(t, IsMoErrCode(ConvertGoError(ctx, errors.New("x")), ErrInternal))
}
