// Package in exposes the catalog's RPC surface: one gRPC service per
// entity, mirroring the HTTP handlers one for one, wire-encoded with
// the JSON codec registered in internal/adapters/grpc/codec rather than
// generated protobuf messages.
package in

import (
	"context"

	"github.com/catalogsvc/catalog/internal/apperr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// unaryHandler adapts a typed (ctx, *Req) (*Resp, error) method into the
// untyped grpc.methodHandler shape every ServiceDesc.Methods entry needs,
// translating any returned AppError into its native gRPC status per the
// same Kind taxonomy the HTTP responses map through apperr.HTTPStatus.
func unaryHandler[Req any, Resp any](method func(ctx context.Context, req *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	wrapped := func(ctx context.Context, req *Req) (*Resp, error) {
		resp, err := method(ctx, req)
		if err != nil {
			return nil, toStatusError(err)
		}

		return resp, nil
	}

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return wrapped(ctx, req)
		}

		info := &grpc.UnaryServerInfo{Server: srv}

		handler := func(ctx context.Context, req any) (any, error) {
			return wrapped(ctx, req.(*Req))
		}

		return interceptor(ctx, req, info, handler)
	}
}

// toStatusError converts err into a gRPC status error carrying the
// AppError's message under the code its Kind maps to.
func toStatusError(err error) error {
	ae := apperr.As(err)
	return status.Error(apperr.GRPCCode(ae.Kind), ae.Error())
}
