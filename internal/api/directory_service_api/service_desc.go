package directory_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "workershub.v1.DirectoryService"

const (
	GetWorkerMethod     = "/" + ServiceName + "/GetWorker"
	WorkerStatsMethod   = "/" + ServiceName + "/WorkerStats"
	BookingStatsMethod  = "/" + ServiceName + "/BookingStats"
	FilterChoicesMethod = "/" + ServiceName + "/FilterChoices"
)

// DirectoryServiceServer exposes read-only directory data using well-known protobuf types.
type DirectoryServiceServer interface {
	GetWorker(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	WorkerStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	BookingStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	FilterChoices(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

var DirectoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DirectoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetWorker",
			Handler: unaryHandler(GetWorkerMethod, func(s DirectoryServiceServer, ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
				return s.GetWorker(ctx, req)
			}),
		},
		{
			MethodName: "WorkerStats",
			Handler: unaryHandler(WorkerStatsMethod, func(s DirectoryServiceServer, ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {
				return s.WorkerStats(ctx, req)
			}),
		},
		{
			MethodName: "BookingStats",
			Handler: unaryHandler(BookingStatsMethod, func(s DirectoryServiceServer, ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {
				return s.BookingStats(ctx, req)
			}),
		},
		{
			MethodName: "FilterChoices",
			Handler: unaryHandler(FilterChoicesMethod, func(s DirectoryServiceServer, ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {
				return s.FilterChoices(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "workershub/v1/directory.proto",
}

func RegisterDirectoryServiceServer(s grpc.ServiceRegistrar, srv DirectoryServiceServer) {
	s.RegisterService(&DirectoryServiceDesc, srv)
}

func unaryHandler[Req any, PReq interface {
	*Req
	proto.Message
}](fullMethod string, call func(DirectoryServiceServer, context.Context, PReq) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DirectoryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(DirectoryServiceServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// DirectoryClient calls DirectoryService over an existing connection.
type DirectoryClient struct {
	cc grpc.ClientConnInterface
}

func NewDirectoryClient(cc grpc.ClientConnInterface) *DirectoryClient {
	return &DirectoryClient{cc: cc}
}

func (c *DirectoryClient) GetWorker(ctx context.Context, id int64, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetWorkerMethod, wrapperspb.Int64(id), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DirectoryClient) WorkerStats(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invokeEmpty(ctx, WorkerStatsMethod, opts...)
}

func (c *DirectoryClient) BookingStats(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invokeEmpty(ctx, BookingStatsMethod, opts...)
}

func (c *DirectoryClient) FilterChoices(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invokeEmpty(ctx, FilterChoicesMethod, opts...)
}

func (c *DirectoryClient) invokeEmpty(ctx context.Context, method string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
