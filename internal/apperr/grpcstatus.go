package apperr

import "google.golang.org/grpc/codes"

// grpcCode maps each error Kind to the gRPC status code it translates to
// at the RPC boundary, mirroring httpStatus for the HTTP boundary. Per
// the ERR-1 envelope contract, the same Kind taxonomy applies uniformly
// across both transports.
var grpcCode = map[Kind]codes.Code{
	KindNotFound:           codes.NotFound,
	KindBadRequest:         codes.InvalidArgument,
	KindValidationError:    codes.InvalidArgument,
	KindUnauthorized:       codes.Unauthenticated,
	KindForbidden:          codes.PermissionDenied,
	KindConflict:           codes.AlreadyExists,
	KindServiceUnavailable: codes.Unavailable,
	KindConfigurationError: codes.Internal,
	KindSerializationError: codes.Internal,
	KindNetworkError:       codes.Unavailable,
	KindTimeoutError:       codes.DeadlineExceeded,
	KindInternalError:      codes.Internal,
}

// GRPCCode returns the gRPC status code for an AppError kind, defaulting
// to Unknown for any kind not explicitly enumerated (there should be
// none).
func GRPCCode(k Kind) codes.Code {
	if code, ok := grpcCode[k]; ok {
		return code
	}

	return codes.Unknown
}
