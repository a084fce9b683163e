package in

import (
	"context"

	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"google.golang.org/grpc"
)

// UserServer is the gRPC counterpart of UserHandler. Users support only
// a hard delete, routed straight to the service, not the deletion
// facade.
type UserServer struct {
	service *services.UserService
}

// NewUserServer builds a UserServer bound to service.
func NewUserServer(service *services.UserService) *UserServer {
	return &UserServer{service: service}
}

type UserListRequest struct {
	Limit  int
	Offset int
}

type UserListResponse struct {
	Users []user.User
}

func (s *UserServer) List(ctx context.Context, req *UserListRequest) (*UserListResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.user.list")
	defer span.End()

	users, err := s.service.FindAll(ctx, user.Filter{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list users", err)
		return nil, err
	}

	return &UserListResponse{Users: users}, nil
}

type UserGetRequest struct {
	ID string
}

type UserGetResponse struct {
	User user.User
}

func (s *UserServer) Get(ctx context.Context, req *UserGetRequest) (*UserGetResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.user.get")
	defer span.End()

	found, err := s.service.FindByID(ctx, req.ID)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find user", err)
		return nil, err
	}

	return &UserGetResponse{User: *found}, nil
}

type UserCreateRequest struct {
	Input user.CreateInput
}

type UserCreateResponse struct {
	User user.User
}

func (s *UserServer) Create(ctx context.Context, req *UserCreateRequest) (*UserCreateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.user.create")
	defer span.End()

	created, err := s.service.Create(ctx, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create user", err)
		return nil, err
	}

	return &UserCreateResponse{User: created}, nil
}

type UserUpdateRequest struct {
	ID    string
	Input user.UpdateInput
}

type UserUpdateResponse struct {
	User user.User
}

func (s *UserServer) Update(ctx context.Context, req *UserUpdateRequest) (*UserUpdateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.user.update")
	defer span.End()

	updated, err := s.service.Update(ctx, req.ID, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update user", err)
		return nil, err
	}

	return &UserUpdateResponse{User: updated}, nil
}

type UserDeleteRequest struct {
	ID string
}

type UserDeleteResponse struct{}

func (s *UserServer) Delete(ctx context.Context, req *UserDeleteRequest) (*UserDeleteResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.user.delete")
	defer span.End()

	if err := s.service.Delete(ctx, req.ID); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete user", err)
		return nil, err
	}

	return &UserDeleteResponse{}, nil
}

func userServiceDesc(srv *UserServer) grpc.ServiceDesc {
	return grpc.ServiceDesc{
		ServiceName: "catalog.UserService",
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "List", Handler: unaryHandler(srv.List)},
			{MethodName: "Get", Handler: unaryHandler(srv.Get)},
			{MethodName: "Create", Handler: unaryHandler(srv.Create)},
			{MethodName: "Update", Handler: unaryHandler(srv.Update)},
			{MethodName: "Delete", Handler: unaryHandler(srv.Delete)},
		},
		Metadata: "catalog/user.proto",
	}
}
