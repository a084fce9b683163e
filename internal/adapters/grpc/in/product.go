package in

import (
	"context"

	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"google.golang.org/grpc"
)

// ProductServer is the gRPC counterpart of ProductHandler, covering the
// core aggregate operations; sub-aggregate mutation (price, inventory,
// images, tags, attributes, history) stays HTTP-only, mirroring how the
// teacher's own gRPC surface exposes only the aggregate root's CRUD
// while richer mutations live on the REST API.
type ProductServer struct {
	service *services.ProductService
	facade  *deletion.Facade
}

// NewProductServer builds a ProductServer bound to service and facade.
func NewProductServer(service *services.ProductService, facade *deletion.Facade) *ProductServer {
	return &ProductServer{service: service, facade: facade}
}

type ProductListRequest struct {
	IncludeDeleted bool
	Query          string
	CategoryID     *string
	Limit          int
	Offset         int
}

type ProductListResponse struct {
	Products []product.Aggregate
}

func (s *ProductServer) List(ctx context.Context, req *ProductListRequest) (*ProductListResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.product.list")
	defer span.End()

	products, err := s.service.FindAll(ctx, product.Filter{
		IncludeDeleted: req.IncludeDeleted,
		Query:          req.Query,
		CategoryID:     req.CategoryID,
		Limit:          req.Limit,
		Offset:         req.Offset,
	})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list products", err)
		return nil, err
	}

	return &ProductListResponse{Products: products}, nil
}

type ProductGetRequest struct {
	ID             string
	IncludeDeleted bool
}

type ProductGetResponse struct {
	Product product.Aggregate
}

func (s *ProductServer) Get(ctx context.Context, req *ProductGetRequest) (*ProductGetResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.product.get")
	defer span.End()

	found, err := s.service.FindByID(ctx, req.ID, req.IncludeDeleted)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find product", err)
		return nil, err
	}

	return &ProductGetResponse{Product: *found}, nil
}

type ProductCreateRequest struct {
	Input product.CreateInput
}

type ProductCreateResponse struct {
	Product product.Product
}

func (s *ProductServer) Create(ctx context.Context, req *ProductCreateRequest) (*ProductCreateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.product.create")
	defer span.End()

	created, err := s.service.Create(ctx, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create product", err)
		return nil, err
	}

	return &ProductCreateResponse{Product: created}, nil
}

type ProductUpdateRequest struct {
	ID    string
	Input product.UpdateInput
}

type ProductUpdateResponse struct {
	Product product.Product
}

func (s *ProductServer) Update(ctx context.Context, req *ProductUpdateRequest) (*ProductUpdateResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.product.update")
	defer span.End()

	updated, err := s.service.Update(ctx, req.ID, req.Input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update product", err)
		return nil, err
	}

	return &ProductUpdateResponse{Product: updated}, nil
}

type ProductDeleteRequest struct {
	ID     string
	Kind   deletion.Kind
	Actor  string
	Reason string
	Force  bool
}

type ProductDeleteResponse struct{}

func (s *ProductServer) Delete(ctx context.Context, req *ProductDeleteRequest) (*ProductDeleteResponse, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "rpc.product.delete")
	defer span.End()

	if err := s.facade.DeleteProduct(ctx, req.ID, req.Kind, req.Actor, req.Reason, req.Force); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete product", err)
		return nil, err
	}

	return &ProductDeleteResponse{}, nil
}

func productServiceDesc(srv *ProductServer) grpc.ServiceDesc {
	return grpc.ServiceDesc{
		ServiceName: "catalog.ProductService",
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "List", Handler: unaryHandler(srv.List)},
			{MethodName: "Get", Handler: unaryHandler(srv.Get)},
			{MethodName: "Create", Handler: unaryHandler(srv.Create)},
			{MethodName: "Update", Handler: unaryHandler(srv.Update)},
			{MethodName: "Delete", Handler: unaryHandler(srv.Delete)},
		},
		Metadata: "catalog/product.proto",
	}
}
