package in

import (
	"context"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type handlerTestRequest struct{ ID string }
type handlerTestResponse struct{ Value string }

func TestUnaryHandler_TranslatesAppErrorToNativeStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", apperr.NotFound("product", "p1"), codes.NotFound},
		{"validation", apperr.Validation("product", "bad sku"), codes.InvalidArgument},
		{"unauthorized", apperr.Unauthorized("missing token"), codes.Unauthenticated},
		{"service unavailable", apperr.ServiceUnavailable("db down"), codes.Unavailable},
		{"internal", apperr.Internal("product", assertErr("boom")), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			method := func(ctx context.Context, req *handlerTestRequest) (*handlerTestResponse, error) {
				return nil, tc.err
			}

			wrapped := unaryHandler(method)

			dec := func(v any) error {
				*(v.(*handlerTestRequest)) = handlerTestRequest{ID: "p1"}
				return nil
			}

			_, err := wrapped(nil, context.Background(), dec, nil)
			require.Error(t, err)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, st.Code())
		})
	}
}

func TestUnaryHandler_PassesThroughSuccessfulResponse(t *testing.T) {
	method := func(ctx context.Context, req *handlerTestRequest) (*handlerTestResponse, error) {
		return &handlerTestResponse{Value: "ok:" + req.ID}, nil
	}

	wrapped := unaryHandler(method)

	dec := func(v any) error {
		*(v.(*handlerTestRequest)) = handlerTestRequest{ID: "p1"}
		return nil
	}

	resp, err := wrapped(nil, context.Background(), dec, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok:p1", resp.(*handlerTestResponse).Value)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
