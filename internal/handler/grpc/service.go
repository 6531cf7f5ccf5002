// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified name of the recipe service.
const ServiceName = "recipes.v1.RecipeService"

const (
	ListRecipesMethod  = "/" + ServiceName + "/ListRecipes"
	GetRecipeMethod    = "/" + ServiceName + "/GetRecipe"
	CreateRecipeMethod = "/" + ServiceName + "/CreateRecipe"
	UpdateRecipeMethod = "/" + ServiceName + "/UpdateRecipe"
	DeleteRecipeMethod = "/" + ServiceName + "/DeleteRecipe"
)

// RecipeServiceServer is implemented by *Handler.
type RecipeServiceServer interface {
	ListRecipes(context.Context, *ListRecipesRequest) (*ListRecipesResponse, error)
	GetRecipe(context.Context, *RecipeID) (*RecipeResponse, error)
	CreateRecipe(context.Context, *CreateRecipeRequest) (*RecipeResponse, error)
	UpdateRecipe(context.Context, *UpdateRecipeRequest) (*RecipeResponse, error)
	DeleteRecipe(context.Context, *RecipeID) (*Empty, error)
}

// RecipeServiceDesc describes recipes.v1.RecipeService for grpc.Server.
var RecipeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecipeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListRecipes", Handler: listRecipesHandler},
		{MethodName: "GetRecipe", Handler: getRecipeHandler},
		{MethodName: "CreateRecipe", Handler: createRecipeHandler},
		{MethodName: "UpdateRecipe", Handler: updateRecipeHandler},
		{MethodName: "DeleteRecipe", Handler: deleteRecipeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "recipes/v1/recipes",
}

// RegisterRecipeServiceServer attaches srv to s.
func RegisterRecipeServiceServer(s grpc.ServiceRegistrar, srv RecipeServiceServer) {
	s.RegisterService(&RecipeServiceDesc, srv)
}

// unary adapts a typed method to grpc.MethodHandler.
func unary[Req any, Resp any](method string, call func(RecipeServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RecipeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RecipeServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var (
	listRecipesHandler  = unary(ListRecipesMethod, RecipeServiceServer.ListRecipes)
	getRecipeHandler    = unary(GetRecipeMethod, RecipeServiceServer.GetRecipe)
	createRecipeHandler = unary(CreateRecipeMethod, RecipeServiceServer.CreateRecipe)
	updateRecipeHandler = unary(UpdateRecipeMethod, RecipeServiceServer.UpdateRecipe)
	deleteRecipeHandler = unary(DeleteRecipeMethod, RecipeServiceServer.DeleteRecipe)
)

// RecipeServiceClient calls recipes.v1.RecipeService over cc. Every call is
// forced onto the JSON codec.
type RecipeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecipeServiceClient(cc grpc.ClientConnInterface) *RecipeServiceClient {
	return &RecipeServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RecipeServiceClient) ListRecipes(ctx context.Context, in *ListRecipesRequest, opts ...grpc.CallOption) (*ListRecipesResponse, error) {
	return invoke[ListRecipesResponse](ctx, c.cc, ListRecipesMethod, in, opts)
}

func (c *RecipeServiceClient) GetRecipe(ctx context.Context, in *RecipeID, opts ...grpc.CallOption) (*RecipeResponse, error) {
	return invoke[RecipeResponse](ctx, c.cc, GetRecipeMethod, in, opts)
}

func (c *RecipeServiceClient) CreateRecipe(ctx context.Context, in *CreateRecipeRequest, opts ...grpc.CallOption) (*RecipeResponse, error) {
	return invoke[RecipeResponse](ctx, c.cc, CreateRecipeMethod, in, opts)
}

func (c *RecipeServiceClient) UpdateRecipe(ctx context.Context, in *UpdateRecipeRequest, opts ...grpc.CallOption) (*RecipeResponse, error) {
	return invoke[RecipeResponse](ctx, c.cc, UpdateRecipeMethod, in, opts)
}

func (c *RecipeServiceClient) DeleteRecipe(ctx context.Context, in *RecipeID, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, DeleteRecipeMethod, in, opts)
}
