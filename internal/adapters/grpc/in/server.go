package in

import (
	// codec registers the JSON wire codec this package's services are
	// served over, in its init().
	_ "github.com/catalogsvc/catalog/internal/adapters/grpc/codec"
	"google.golang.org/grpc"
)

// NewServer builds a *grpc.Server with the catalog's RPC surface
// registered: one service per entity, mirroring the HTTP API.
func NewServer(item *ItemServer, user *UserServer, category *CategoryServer, product *ProductServer) *grpc.Server {
	srv := grpc.NewServer()

	srv.RegisterService(toPtr(itemServiceDesc(item)), item)
	srv.RegisterService(toPtr(userServiceDesc(user)), user)
	srv.RegisterService(toPtr(categoryServiceDesc(category)), category)
	srv.RegisterService(toPtr(productServiceDesc(product)), product)

	return srv
}

func toPtr[T any](v T) *T {
	return &v
}
