// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: llm.proto

package llmv1

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
	AgentInvoker_Invoke_FullMethodName = "/nexus.llm.v1.AgentInvoker/Invoke"
)

// AgentInvokerClient is the client API for AgentInvoker service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AgentInvoker is the Python-side agent execution service. One call runs
// one agent turn: the service renders the prompt template, executes the
// agent with its tools against the project working directory, and returns
// the final text plus usage.
type AgentInvokerClient interface {
	Invoke(ctx context.Context, in *InvokeRequest, opts ...grpc.CallOption) (*InvokeResponse, error)
}

type agentInvokerClient struct {
	cc grpc.ClientConnInterface
}

func NewAgentInvokerClient(cc grpc.ClientConnInterface) AgentInvokerClient {
	return &agentInvokerClient{cc}
}

func (c *agentInvokerClient) Invoke(ctx context.Context, in *InvokeRequest, opts ...grpc.CallOption) (*InvokeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InvokeResponse)
	err := c.cc.Invoke(ctx, AgentInvoker_Invoke_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AgentInvokerServer is the server API for AgentInvoker service.
// All implementations must embed UnimplementedAgentInvokerServer
// for forward compatibility.
//
// AgentInvoker is the Python-side agent execution service. One call runs
// one agent turn: the service renders the prompt template, executes the
// agent with its tools against the project working directory, and returns
// the final text plus usage.
type AgentInvokerServer interface {
	Invoke(context.Context, *InvokeRequest) (*InvokeResponse, error)
	mustEmbedUnimplementedAgentInvokerServer()
}

// UnimplementedAgentInvokerServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAgentInvokerServer struct{}

func (UnimplementedAgentInvokerServer) Invoke(context.Context, *InvokeRequest) (*InvokeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Invoke not implemented")
}
func (UnimplementedAgentInvokerServer) mustEmbedUnimplementedAgentInvokerServer() {}
func (UnimplementedAgentInvokerServer) testEmbeddedByValue()                      {}

// UnsafeAgentInvokerServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AgentInvokerServer will
// result in compilation errors.
type UnsafeAgentInvokerServer interface {
	mustEmbedUnimplementedAgentInvokerServer()
}

func RegisterAgentInvokerServer(s grpc.ServiceRegistrar, srv AgentInvokerServer) {
	// If the following call panics, it indicates UnimplementedAgentInvokerServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AgentInvoker_ServiceDesc, srv)
}

func _AgentInvoker_Invoke_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InvokeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentInvokerServer).Invoke(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentInvoker_Invoke_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentInvokerServer).Invoke(ctx, req.(*InvokeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AgentInvoker_ServiceDesc is the grpc.ServiceDesc for AgentInvoker service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AgentInvoker_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "nexus.llm.v1.AgentInvoker",
	HandlerType: (*AgentInvokerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Invoke",
			Handler:    _AgentInvoker_Invoke_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "llm.proto",
}
