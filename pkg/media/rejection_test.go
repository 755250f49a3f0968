package media

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Suhaibinator/SMedia/pkg/codec"
)

func TestRejectionMessages(t *testing.T) {
	underlying := fmt.Errorf("boom")

	tests := []struct {
		name string
		rej  Rejection
		want string
	}{
		{
			name: "body read",
			rej:  Rejection{Kind: codec.KindBodyRead, Codec: codec.JSON, Err: underlying},
			want: "Failed to read the request body: boom",
		},
		{
			name: "syntax",
			rej:  Rejection{Kind: codec.KindSyntax, Codec: codec.JSON, Err: underlying},
			want: "Failed to parse the request body as JSON: boom",
		},
		{
			name: "data without path",
			rej:  Rejection{Kind: codec.KindData, Codec: codec.JSON, Err: underlying},
			want: "Failed to deserialize the JSON body into the target type: boom",
		},
		{
			name: "data with path",
			rej:  Rejection{Kind: codec.KindData, Codec: codec.JSON, Path: "test", Err: underlying},
			want: "Failed to deserialize the JSON body into the target type: test: boom",
		},
		{
			name: "format",
			rej:  Rejection{Kind: codec.KindFormat, Codec: codec.URLEncoded, Err: underlying},
			want: "Failed to decode the request body as form urlencoded: boom",
		},
		{
			name: "encode",
			rej:  Rejection{Kind: codec.KindEncode, Codec: codec.JSON, Err: underlying},
			want: "Failed to encode the response body as JSON: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rej.Error())
		})
	}
}

func TestRejectionUnwrap(t *testing.T) {
	underlying := fmt.Errorf("boom")
	rej := &Rejection{Kind: codec.KindSyntax, Codec: codec.JSON, Err: underlying}
	assert.True(t, errors.Is(rej, underlying))
}

func TestRejectionStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest,
		(&Rejection{Kind: codec.KindSyntax}).StatusCode())
	assert.Equal(t, http.StatusBadRequest,
		(&Rejection{Kind: codec.KindData}).StatusCode())
	assert.Equal(t, http.StatusBadRequest,
		(&Rejection{Kind: codec.KindFormat}).StatusCode())
	assert.Equal(t, http.StatusInternalServerError,
		(&Rejection{Kind: codec.KindEncode}).StatusCode())
	assert.Equal(t, http.StatusBadRequest,
		(&Rejection{Kind: codec.KindBodyRead, Err: fmt.Errorf("conn reset")}).StatusCode())
	assert.Equal(t, http.StatusRequestEntityTooLarge,
		(&Rejection{Kind: codec.KindBodyRead, Err: &http.MaxBytesError{Limit: 8}}).StatusCode())
}
