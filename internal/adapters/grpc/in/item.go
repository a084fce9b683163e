package in

import (
	"context"

	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"google.golang.org/grpc"
)

// ItemServer is the gRPC counterpart of ItemHandler: identical use
// cases, no HTTP-specific concerns.
type ItemServer struct {
	service *services.ItemService
	facade  *deletion.Facade
}

// NewItemServer builds an ItemServer bound to service and facade.
func NewItemServer(service *services.ItemService, facade *deletion.Facade) *ItemServer {
	return &ItemServer{service: service, facade: facade}
}

type ItemListRequest struct {
	IncludeDeleted bool
	Limit          int
	Offset         int
}

type ItemListResponse struct {
	Items []item.Item
}

func (s *ItemServer) List(ctx context.Context, req *ItemListRequest) (*ItemListResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.item.list")
	defer span.End()

	items, err := s.service.FindAll(ctx, item.Filter{IncludeDeleted: req.IncludeDeleted, Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list items", err)
		return nil, err
	}

	return &ItemListResponse{Items: items}, nil
}

type ItemGetRequest struct {
	ID             uint64
	IncludeDeleted bool
}

type ItemGetResponse struct {
	Item item.Item
}

func (s *ItemServer) Get(ctx context.Context, req *ItemGetRequest) (*ItemGetResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.item.get")
	defer span.End()

	found, err := s.service.FindByID(ctx, req.ID, req.IncludeDeleted)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find item", err)
		return nil, err
	}

	return &ItemGetResponse{Item: *found}, nil
}

type ItemCreateRequest struct {
	Input item.CreateInput
}

type ItemCreateResponse struct {
	Item item.Item
}

func (s *ItemServer) Create(ctx context.Context, req *ItemCreateRequest) (*ItemCreateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.item.create")
	defer span.End()

	created, err := s.service.Create(ctx, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create item", err)
		return nil, err
	}

	return &ItemCreateResponse{Item: created}, nil
}

type ItemUpdateRequest struct {
	ID    uint64
	Input item.UpdateInput
}

type ItemUpdateResponse struct {
	Item item.Item
}

func (s *ItemServer) Update(ctx context.Context, req *ItemUpdateRequest) (*ItemUpdateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.item.update")
	defer span.End()

	updated, err := s.service.Update(ctx, req.ID, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update item", err)
		return nil, err
	}

	return &ItemUpdateResponse{Item: updated}, nil
}

type ItemDeleteRequest struct {
	ID   uint64
	Kind deletion.Kind
}

type ItemDeleteResponse struct{}

func (s *ItemServer) Delete(ctx context.Context, req *ItemDeleteRequest) (*ItemDeleteResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.item.delete")
	defer span.End()

	if err := s.facade.DeleteItem(ctx, req.ID, req.Kind); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete item", err)
		return nil, err
	}

	return &ItemDeleteResponse{}, nil
}

// itemServiceDesc builds the grpc.ServiceDesc for ItemServer bound to srv.
func itemServiceDesc(srv *ItemServer) grpc.ServiceDesc {
	return grpc.ServiceDesc{
		ServiceName: "catalog.ItemService",
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "List", Handler: unaryHandler(srv.List)},
			{MethodName: "Get", Handler: unaryHandler(srv.Get)},
			{MethodName: "Create", Handler: unaryHandler(srv.Create)},
			{MethodName: "Update", Handler: unaryHandler(srv.Update)},
			{MethodName: "Delete", Handler: unaryHandler(srv.Delete)},
		},
		Metadata: "catalog/item.proto",
	}
}
