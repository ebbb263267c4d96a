package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/internal/validators"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	slots.ErrMissingTrigger:       codes.InvalidArgument,
	slots.ErrMissingKey:           codes.InvalidArgument,
	slots.ErrMalformedValueRecord: codes.InvalidArgument,
	slots.ErrConstraintBinding:    codes.InvalidArgument,
	slots.ErrConstraintParse:      codes.InvalidArgument,
	slots.ErrConstraintNotBoolean: codes.InvalidArgument,
	slots.ErrConstraintEvaluation: codes.InvalidArgument,

	validators.ErrParserMismatch:    codes.InvalidArgument,
	validators.ErrPickFirstConflict: codes.InvalidArgument,
	validators.ErrUnknownParser:     codes.InvalidArgument,

	context.DeadlineExceeded: codes.DeadlineExceeded,
	context.Canceled:         codes.Canceled,
}

// toStatus converts a service error to a gRPC status carrying only the
// sentinel's message. Unexpected errors are logged and reported as Internal.
func toStatus(ctx context.Context, err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, target.Error())
		}
	}

	logger.FromContext(ctx).Err(err).Msg("unexpected error in gRPC handler")
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
