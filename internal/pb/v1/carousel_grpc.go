package v1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	structpb "google.golang.org/protobuf/types/known/structpb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
)

// This is a compile-time assertion to ensure that this file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion9

const (
	CarouselService_GetState_FullMethodName   = "/guidingcommitments.v1.CarouselService/GetState"
	CarouselService_Navigate_FullMethodName   = "/guidingcommitments.v1.CarouselService/Navigate"
	CarouselService_Next_FullMethodName       = "/guidingcommitments.v1.CarouselService/Next"
	CarouselService_Previous_FullMethodName   = "/guidingcommitments.v1.CarouselService/Previous"
	CarouselService_ListSlides_FullMethodName = "/guidingcommitments.v1.CarouselService/ListSlides"
)

// CarouselServiceClient is the client API for CarouselService service.
type CarouselServiceClient interface {
	// GetState returns the current carousel state.
	GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Navigate requests an absolute slide index; out-of-range values are resolved by the server policy.
	Navigate(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Next requests the slide after the active one.
	Next(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Previous requests the slide before the active one.
	Previous(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	// ListSlides returns every slide of the deck in display order.
	ListSlides(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type carouselServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCarouselServiceClient(cc grpc.ClientConnInterface) CarouselServiceClient {
	return &carouselServiceClient{cc}
}

func (c *carouselServiceClient) GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, CarouselService_GetState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carouselServiceClient) Navigate(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, CarouselService_Navigate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carouselServiceClient) Next(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, CarouselService_Next_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carouselServiceClient) Previous(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, CarouselService_Previous_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carouselServiceClient) ListSlides(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(structpb.ListValue)
	err := c.cc.Invoke(ctx, CarouselService_ListSlides_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CarouselServiceServer is the server API for CarouselService service.
// All implementations must embed UnimplementedCarouselServiceServer
// for forward compatibility.
type CarouselServiceServer interface {
	GetState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Navigate(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	Next(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Previous(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListSlides(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	mustEmbedUnimplementedCarouselServiceServer()
}

// UnimplementedCarouselServiceServer must be embedded to have
// forward compatible implementations.
type UnimplementedCarouselServiceServer struct{}

func (UnimplementedCarouselServiceServer) GetState(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetState not implemented")
}
func (UnimplementedCarouselServiceServer) Navigate(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Navigate not implemented")
}
func (UnimplementedCarouselServiceServer) Next(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Next not implemented")
}
func (UnimplementedCarouselServiceServer) Previous(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Previous not implemented")
}
func (UnimplementedCarouselServiceServer) ListSlides(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSlides not implemented")
}
func (UnimplementedCarouselServiceServer) mustEmbedUnimplementedCarouselServiceServer() {}

func RegisterCarouselServiceServer(s grpc.ServiceRegistrar, srv CarouselServiceServer) {
	s.RegisterService(&CarouselService_ServiceDesc, srv)
}

func _CarouselService_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarouselServiceServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarouselService_GetState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarouselServiceServer).GetState(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarouselService_Navigate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarouselServiceServer).Navigate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarouselService_Navigate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarouselServiceServer).Navigate(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarouselService_Next_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarouselServiceServer).Next(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarouselService_Next_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarouselServiceServer).Next(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarouselService_Previous_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarouselServiceServer).Previous(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarouselService_Previous_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarouselServiceServer).Previous(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarouselService_ListSlides_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarouselServiceServer).ListSlides(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarouselService_ListSlides_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarouselServiceServer).ListSlides(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// CarouselService_ServiceDesc is the grpc.ServiceDesc for CarouselService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CarouselService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "guidingcommitments.v1.CarouselService",
	HandlerType: (*CarouselServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetState",
			Handler:    _CarouselService_GetState_Handler,
		},
		{
			MethodName: "Navigate",
			Handler:    _CarouselService_Navigate_Handler,
		},
		{
			MethodName: "Next",
			Handler:    _CarouselService_Next_Handler,
		},
		{
			MethodName: "Previous",
			Handler:    _CarouselService_Previous_Handler,
		},
		{
			MethodName: "ListSlides",
			Handler:    _CarouselService_ListSlides_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "guidingcommitments/v1/carousel.proto",
}
