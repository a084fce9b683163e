package in

import (
	"context"

	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"google.golang.org/grpc"
)

// CategoryServer is the gRPC counterpart of CategoryHandler.
type CategoryServer struct {
	service *services.CategoryService
	facade  *deletion.Facade
}

// NewCategoryServer builds a CategoryServer bound to service and facade.
func NewCategoryServer(service *services.CategoryService, facade *deletion.Facade) *CategoryServer {
	return &CategoryServer{service: service, facade: facade}
}

type CategoryListRequest struct {
	IncludeDeleted bool
	ParentID       *string
	Limit          int
	Offset         int
}

type CategoryListResponse struct {
	Categories []category.Category
}

func (s *CategoryServer) List(ctx context.Context, req *CategoryListRequest) (*CategoryListResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.category.list")
	defer span.End()

	categories, err := s.service.FindAll(ctx, category.Filter{
		IncludeDeleted: req.IncludeDeleted,
		ParentID:       req.ParentID,
		Limit:          req.Limit,
		Offset:         req.Offset,
	})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list categories", err)
		return nil, err
	}

	return &CategoryListResponse{Categories: categories}, nil
}

type CategoryGetRequest struct {
	ID             string
	IncludeDeleted bool
}

type CategoryGetResponse struct {
	Category category.Category
}

func (s *CategoryServer) Get(ctx context.Context, req *CategoryGetRequest) (*CategoryGetResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.category.get")
	defer span.End()

	found, err := s.service.FindByID(ctx, req.ID, req.IncludeDeleted)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find category", err)
		return nil, err
	}

	return &CategoryGetResponse{Category: *found}, nil
}

type CategoryCreateRequest struct {
	Input category.CreateInput
}

type CategoryCreateResponse struct {
	Category category.Category
}

func (s *CategoryServer) Create(ctx context.Context, req *CategoryCreateRequest) (*CategoryCreateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.category.create")
	defer span.End()

	created, err := s.service.Create(ctx, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create category", err)
		return nil, err
	}

	return &CategoryCreateResponse{Category: created}, nil
}

type CategoryUpdateRequest struct {
	ID    string
	Input category.UpdateInput
}

type CategoryUpdateResponse struct {
	Category category.Category
}

func (s *CategoryServer) Update(ctx context.Context, req *CategoryUpdateRequest) (*CategoryUpdateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.category.update")
	defer span.End()

	updated, err := s.service.Update(ctx, req.ID, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update category", err)
		return nil, err
	}

	return &CategoryUpdateResponse{Category: updated}, nil
}

type CategoryMoveRequest struct {
	ID           string
	NewParentID  *string
	NewSortOrder int
}

type CategoryMoveResponse struct {
	Category category.Category
}

func (s *CategoryServer) Move(ctx context.Context, req *CategoryMoveRequest) (*CategoryMoveResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.category.move")
	defer span.End()

	moved, err := s.service.Move(ctx, req.ID, req.NewParentID, req.NewSortOrder)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to move category", err)
		return nil, err
	}

	return &CategoryMoveResponse{Category: moved}, nil
}

type CategoryDeleteRequest struct {
	ID   string
	Kind deletion.Kind
}

type CategoryDeleteResponse struct{}

func (s *CategoryServer) Delete(ctx context.Context, req *CategoryDeleteRequest) (*CategoryDeleteResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.category.delete")
	defer span.End()

	if err := s.facade.DeleteCategory(ctx, req.ID, req.Kind); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete category", err)
		return nil, err
	}

	return &CategoryDeleteResponse{}, nil
}

func categoryServiceDesc(srv *CategoryServer) grpc.ServiceDesc {
	return grpc.ServiceDesc{
		ServiceName: "catalog.CategoryService",
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "List", Handler: unaryHandler(srv.List)},
			{MethodName: "Get", Handler: unaryHandler(srv.Get)},
			{MethodName: "Create", Handler: unaryHandler(srv.Create)},
			{MethodName: "Update", Handler: unaryHandler(srv.Update)},
			{MethodName: "Move", Handler: unaryHandler(srv.Move)},
			{MethodName: "Delete", Handler: unaryHandler(srv.Delete)},
		},
		Metadata: "catalog/category.proto",
	}
}
