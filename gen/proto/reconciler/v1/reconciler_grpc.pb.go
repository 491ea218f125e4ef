// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: reconciler/v1/reconciler.proto

package reconcilerpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ReconcilerService_ReconcileBatch_FullMethodName         = "/reconciler.v1.ReconcilerService/ReconcileBatch"
	ReconcilerService_ListUnmatchedReports_FullMethodName   = "/reconciler.v1.ReconcilerService/ListUnmatchedReports"
	ReconcilerService_AssignUnmatchedReport_FullMethodName  = "/reconciler.v1.ReconcilerService/AssignUnmatchedReport"
	ReconcilerService_ClearReviewFlag_FullMethodName        = "/reconciler.v1.ReconcilerService/ClearReviewFlag"
	ReconcilerService_ExportUnmatchedReports_FullMethodName = "/reconciler.v1.ReconcilerService/ExportUnmatchedReports"
)

// ReconcilerServiceClient is the client API for ReconcilerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReconcilerService matches admin-uploaded report files to outstanding
// customer documents. All RPCs require a staff or admin bearer token.
type ReconcilerServiceClient interface {
	// ReconcileBatch reconciles one batch of uploaded report files.
	ReconcileBatch(ctx context.Context, in *ReconcileBatchRequest, opts ...grpc.CallOption) (*ReconcileBatchResponse, error)
	// ListUnmatchedReports returns the manual-resolution queue.
	ListUnmatchedReports(ctx context.Context, in *ListUnmatchedReportsRequest, opts ...grpc.CallOption) (*ListUnmatchedReportsResponse, error)
	// AssignUnmatchedReport manually attaches a queued report to a document.
	AssignUnmatchedReport(ctx context.Context, in *AssignUnmatchedReportRequest, opts ...grpc.CallOption) (*AssignUnmatchedReportResponse, error)
	// ClearReviewFlag re-enables automatic matching for a flagged document.
	ClearReviewFlag(ctx context.Context, in *ClearReviewFlagRequest, opts ...grpc.CallOption) (*ClearReviewFlagResponse, error)
	// ExportUnmatchedReports renders the queue as an XLSX workbook.
	ExportUnmatchedReports(ctx context.Context, in *ExportUnmatchedReportsRequest, opts ...grpc.CallOption) (*ExportUnmatchedReportsResponse, error)
}

type reconcilerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReconcilerServiceClient(cc grpc.ClientConnInterface) ReconcilerServiceClient {
	return &reconcilerServiceClient{cc}
}

func (c *reconcilerServiceClient) ReconcileBatch(ctx context.Context, in *ReconcileBatchRequest, opts ...grpc.CallOption) (*ReconcileBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReconcileBatchResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_ReconcileBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) ListUnmatchedReports(ctx context.Context, in *ListUnmatchedReportsRequest, opts ...grpc.CallOption) (*ListUnmatchedReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUnmatchedReportsResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_ListUnmatchedReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) AssignUnmatchedReport(ctx context.Context, in *AssignUnmatchedReportRequest, opts ...grpc.CallOption) (*AssignUnmatchedReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssignUnmatchedReportResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_AssignUnmatchedReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) ClearReviewFlag(ctx context.Context, in *ClearReviewFlagRequest, opts ...grpc.CallOption) (*ClearReviewFlagResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearReviewFlagResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_ClearReviewFlag_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) ExportUnmatchedReports(ctx context.Context, in *ExportUnmatchedReportsRequest, opts ...grpc.CallOption) (*ExportUnmatchedReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportUnmatchedReportsResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_ExportUnmatchedReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReconcilerServiceServer is the server API for ReconcilerService service.
// All implementations must embed UnimplementedReconcilerServiceServer
// for forward compatibility.
//
// ReconcilerService matches admin-uploaded report files to outstanding
// customer documents. All RPCs require a staff or admin bearer token.
type ReconcilerServiceServer interface {
	// ReconcileBatch reconciles one batch of uploaded report files.
	ReconcileBatch(context.Context, *ReconcileBatchRequest) (*ReconcileBatchResponse, error)
	// ListUnmatchedReports returns the manual-resolution queue.
	ListUnmatchedReports(context.Context, *ListUnmatchedReportsRequest) (*ListUnmatchedReportsResponse, error)
	// AssignUnmatchedReport manually attaches a queued report to a document.
	AssignUnmatchedReport(context.Context, *AssignUnmatchedReportRequest) (*AssignUnmatchedReportResponse, error)
	// ClearReviewFlag re-enables automatic matching for a flagged document.
	ClearReviewFlag(context.Context, *ClearReviewFlagRequest) (*ClearReviewFlagResponse, error)
	// ExportUnmatchedReports renders the queue as an XLSX workbook.
	ExportUnmatchedReports(context.Context, *ExportUnmatchedReportsRequest) (*ExportUnmatchedReportsResponse, error)
	mustEmbedUnimplementedReconcilerServiceServer()
}

// UnimplementedReconcilerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReconcilerServiceServer struct{}

func (UnimplementedReconcilerServiceServer) ReconcileBatch(context.Context, *ReconcileBatchRequest) (*ReconcileBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReconcileBatch not implemented")
}
func (UnimplementedReconcilerServiceServer) ListUnmatchedReports(context.Context, *ListUnmatchedReportsRequest) (*ListUnmatchedReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUnmatchedReports not implemented")
}
func (UnimplementedReconcilerServiceServer) AssignUnmatchedReport(context.Context, *AssignUnmatchedReportRequest) (*AssignUnmatchedReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignUnmatchedReport not implemented")
}
func (UnimplementedReconcilerServiceServer) ClearReviewFlag(context.Context, *ClearReviewFlagRequest) (*ClearReviewFlagResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearReviewFlag not implemented")
}
func (UnimplementedReconcilerServiceServer) ExportUnmatchedReports(context.Context, *ExportUnmatchedReportsRequest) (*ExportUnmatchedReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportUnmatchedReports not implemented")
}
func (UnimplementedReconcilerServiceServer) mustEmbedUnimplementedReconcilerServiceServer() {}
func (UnimplementedReconcilerServiceServer) testEmbeddedByValue()                           {}

// UnsafeReconcilerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReconcilerServiceServer will
// result in compilation errors.
type UnsafeReconcilerServiceServer interface {
	mustEmbedUnimplementedReconcilerServiceServer()
}

func RegisterReconcilerServiceServer(s grpc.ServiceRegistrar, srv ReconcilerServiceServer) {
	// If the following call pancis, it indicates UnimplementedReconcilerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReconcilerService_ServiceDesc, srv)
}

func _ReconcilerService_ReconcileBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReconcileBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).ReconcileBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_ReconcileBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).ReconcileBatch(ctx, req.(*ReconcileBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_ListUnmatchedReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUnmatchedReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).ListUnmatchedReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_ListUnmatchedReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).ListUnmatchedReports(ctx, req.(*ListUnmatchedReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_AssignUnmatchedReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignUnmatchedReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).AssignUnmatchedReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_AssignUnmatchedReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).AssignUnmatchedReport(ctx, req.(*AssignUnmatchedReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_ClearReviewFlag_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearReviewFlagRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).ClearReviewFlag(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_ClearReviewFlag_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).ClearReviewFlag(ctx, req.(*ClearReviewFlagRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_ExportUnmatchedReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportUnmatchedReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).ExportUnmatchedReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_ExportUnmatchedReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).ExportUnmatchedReports(ctx, req.(*ExportUnmatchedReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReconcilerService_ServiceDesc is the grpc.ServiceDesc for ReconcilerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReconcilerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "reconciler.v1.ReconcilerService",
	HandlerType: (*ReconcilerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReconcileBatch",
			Handler:    _ReconcilerService_ReconcileBatch_Handler,
		},
		{
			MethodName: "ListUnmatchedReports",
			Handler:    _ReconcilerService_ListUnmatchedReports_Handler,
		},
		{
			MethodName: "AssignUnmatchedReport",
			Handler:    _ReconcilerService_AssignUnmatchedReport_Handler,
		},
		{
			MethodName: "ClearReviewFlag",
			Handler:    _ReconcilerService_ClearReviewFlag_Handler,
		},
		{
			MethodName: "ExportUnmatchedReports",
			Handler:    _ReconcilerService_ExportUnmatchedReports_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reconciler/v1/reconciler.proto",
}
