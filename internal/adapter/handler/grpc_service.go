package handler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
)

const ProductServiceName = "inventory.ProductService"

type ListProductsRequest struct {
	ID string `json:"id,omitempty"`
}

type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
}

type UpdateProductRequest struct {
	Product domain.Product `json:"product"`
}

type DeleteProductRequest struct {
	ID string `json:"id"`
}

type ResolveScanRequest struct {
	Payload string `json:"payload"`
}

type ProductResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Product *domain.Product `json:"product,omitempty"`
}

type ProductListResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message"`
	Products domain.ProductList `json:"products"`
}

type ResolveScanResponse struct {
	Matched bool            `json:"matched"`
	Message string          `json:"message"`
	Product *domain.Product `json:"product,omitempty"`
}

type ProductServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ProductListResponse, error)
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*ProductListResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*ProductListResponse, error)
	ResolveScan(context.Context, *ResolveScanRequest) (*ResolveScanResponse, error)
}

// ProductServiceDesc describes the service by hand; messages travel through
// the JSON codec instead of protobuf.
var ProductServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("ListProducts", ProductServiceServer.ListProducts),
		unaryMethod("CreateProduct", ProductServiceServer.CreateProduct),
		unaryMethod("UpdateProduct", ProductServiceServer.UpdateProduct),
		unaryMethod("DeleteProduct", ProductServiceServer.DeleteProduct),
		unaryMethod("ResolveScan", ProductServiceServer.ResolveScan),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inventory/product_service",
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductServiceDesc, srv)
}

func unaryMethod[Req, Resp any](name string, call func(ProductServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ProductServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ProductServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ProductServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ProductServiceClient calls the product service over a JSON-codec connection.
type ProductServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) *ProductServiceClient {
	return &ProductServiceClient{cc: cc}
}

func (c *ProductServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ProductListResponse, error) {
	out := new(ProductListResponse)
	return out, c.invoke(ctx, "ListProducts", in, out, opts)
}

func (c *ProductServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	return out, c.invoke(ctx, "CreateProduct", in, out, opts)
}

func (c *ProductServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*ProductListResponse, error) {
	out := new(ProductListResponse)
	return out, c.invoke(ctx, "UpdateProduct", in, out, opts)
}

func (c *ProductServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*ProductListResponse, error) {
	out := new(ProductListResponse)
	return out, c.invoke(ctx, "DeleteProduct", in, out, opts)
}

func (c *ProductServiceClient) ResolveScan(ctx context.Context, in *ResolveScanRequest, opts ...grpc.CallOption) (*ResolveScanResponse, error) {
	out := new(ResolveScanResponse)
	return out, c.invoke(ctx, "ResolveScan", in, out, opts)
}

func (c *ProductServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(JSONCodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ProductServiceName+"/"+method, in, out, opts...)
}

// UnaryLoggingInterceptor logs every call with its status code.
func UnaryLoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("grpc request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return resp, err
	}
}
