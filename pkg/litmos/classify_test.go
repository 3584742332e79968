package litmos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Success(t *testing.T) {
	for _, status := range []int{200, 201} {
		o := classify(status, []byte(`{"Id":"1"}`))
		assert.Equal(t, outcomeBody, o.kind, "status %d", status)
		assert.Equal(t, []byte(`{"Id":"1"}`), o.body)
		assert.True(t, o.success())
		assert.NoError(t, o.err("GET x"))

		for _, body := range [][]byte{nil, {}, []byte("  \r\n\t")} {
			o := classify(status, body)
			assert.Equal(t, outcomeEmpty, o.kind, "status %d body %q", status, body)
			assert.True(t, o.success())
		}
	}
}

func TestClassify_Failures(t *testing.T) {
	tests := []struct {
		status int
		want   *Error
	}{
		{status: 404, want: ErrNotFound},
		{status: 503, want: ErrRateLimited},
		{status: 400, want: ErrAPI},
		{status: 403, want: ErrAPI},
		{status: 409, want: ErrAPI},
		{status: 500, want: ErrAPI},
		{status: 204, want: ErrAPI},
	}

	for _, tt := range tests {
		o := classify(tt.status, []byte("raw"))
		require.False(t, o.success(), "status %d", tt.status)

		err := o.err("GET users")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)

		apiErr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, tt.status, apiErr.StatusCode)
		assert.Equal(t, []byte("raw"), apiErr.Body)
		assert.Equal(t, "GET users", apiErr.Op)
	}
}

func TestClassify_Exhaustive(t *testing.T) {
	for status := 100; status < 600; status++ {
		o := classify(status, []byte("x"))
		switch status {
		case 200, 201:
			assert.Equal(t, outcomeBody, o.kind, "status %d", status)
		case 404:
			assert.Equal(t, outcomeNotFound, o.kind, "status %d", status)
		case 503:
			assert.Equal(t, outcomeRateLimited, o.kind, "status %d", status)
		default:
			assert.Equal(t, outcomeAPIError, o.kind, "status %d", status)
			assert.ErrorIs(t, o.err("op"), ErrAPI)
		}
	}
}
