package pricing

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "booking.pricing.v1.PricingService"

// Full method names.
const (
	QuoteCourseMethod = "/" + ServiceName + "/QuoteCourse"
	QuoteTutorMethod  = "/" + ServiceName + "/QuoteTutor"
	ListCoursesMethod = "/" + ServiceName + "/ListCourses"
)

// PricingServiceServer is the server API for PricingService. Requests and
// replies are google.protobuf.Struct documents; see mappers.go for fields.
type PricingServiceServer interface {
	QuoteCourse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	QuoteTutor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCourses(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPricingServiceServer registers srv with s.
func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes PricingService for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "QuoteCourse", Handler: unaryHandler(QuoteCourseMethod, PricingServiceServer.QuoteCourse)},
		{MethodName: "QuoteTutor", Handler: unaryHandler(QuoteTutorMethod, PricingServiceServer.QuoteTutor)},
		{MethodName: "ListCourses", Handler: unaryHandler(ListCoursesMethod, PricingServiceServer.ListCourses)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "booking/pricing/v1/pricing.proto",
}

type unaryMethod func(PricingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, method unaryMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(PricingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return method(srv.(PricingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PricingServiceClient is the client API for PricingService.
type PricingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPricingServiceClient creates a client on cc.
func NewPricingServiceClient(cc grpc.ClientConnInterface) *PricingServiceClient {
	return &PricingServiceClient{cc: cc}
}

func (c *PricingServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// QuoteCourse prices a course booking.
func (c *PricingServiceClient) QuoteCourse(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QuoteCourseMethod, in, opts...)
}

// QuoteTutor prices a tutor booking.
func (c *PricingServiceClient) QuoteTutor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QuoteTutorMethod, in, opts...)
}

// ListCourses returns one page of courses.
func (c *PricingServiceClient) ListCourses(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListCoursesMethod, in, opts...)
}
