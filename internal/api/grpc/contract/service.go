package contract

import (
	"context"

	"google.golang.org/grpc"
)

const (
	AuthServiceName    = "marketmanager.Auth"
	LicenseServiceName = "marketmanager.License"
	AdminServiceName   = "marketmanager.Admin"
)

// Full method names used by interceptors.
const (
	AuthLoginMethod       = "/" + AuthServiceName + "/Login"
	LicenseValidateMethod = "/" + LicenseServiceName + "/Validate"
	LicenseActivateMethod = "/" + LicenseServiceName + "/Activate"
	AdminMethodPrefix     = "/" + AdminServiceName + "/"
)

// AuthServer serves account registration and sessions.
type AuthServer interface {
	Register(ctx context.Context, in *RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, in *LoginRequest) (*LoginResponse, error)
	ValidateSession(ctx context.Context, in *SessionRequest) (*SessionResponse, error)
	Logout(ctx context.Context, in *SessionRequest) (*StatusResponse, error)
}

// LicenseServer serves validation and activation of this installation's license.
type LicenseServer interface {
	Validate(ctx context.Context, in *LicenseKeyRequest) (*ValidationResponse, error)
	Activate(ctx context.Context, in *LicenseKeyRequest) (*ActivationResponse, error)
	CheckSaved(ctx context.Context, in *Empty) (*ValidationResponse, error)
	Current(ctx context.Context, in *Empty) (*CurrentLicenseResponse, error)
	Clear(ctx context.Context, in *Empty) (*StatusResponse, error)
	ExpiringSoon(ctx context.Context, in *ExpiringSoonRequest) (*ExpiringSoonResponse, error)
}

// AdminServer serves user and license management. Every call requires an
// administrator session.
type AdminServer interface {
	ListUsers(ctx context.Context, in *Empty) (*UsersResponse, error)
	CreateUser(ctx context.Context, in *RegisterRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, in *IDRequest) (*StatusResponse, error)
	SetUserActive(ctx context.Context, in *SetUserActiveRequest) (*UserResponse, error)
	ListLicenses(ctx context.Context, in *Empty) (*LicensesResponse, error)
	CreateLicense(ctx context.Context, in *CreateLicenseRequest) (*LicenseResponse, error)
	CreateLicenses(ctx context.Context, in *CreateLicensesRequest) (*LicensesResponse, error)
	UpdateLicense(ctx context.Context, in *UpdateLicenseRequest) (*LicenseResponse, error)
	DeleteLicense(ctx context.Context, in *IDRequest) (*StatusResponse, error)
	Statistics(ctx context.Context, in *Empty) (*StatisticsResponse, error)
	PurgeSessions(ctx context.Context, in *Empty) (*PurgeResponse, error)
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&authServiceDesc, srv)
}

func RegisterLicenseServer(s grpc.ServiceRegistrar, srv LicenseServer) {
	s.RegisterService(&licenseServiceDesc, srv)
}

func RegisterAdminServer(s grpc.ServiceRegistrar, srv AdminServer) {
	s.RegisterService(&adminServiceDesc, srv)
}

var authServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		unary[AuthServer](AuthServiceName, "Register", AuthServer.Register),
		unary[AuthServer](AuthServiceName, "Login", AuthServer.Login),
		unary[AuthServer](AuthServiceName, "ValidateSession", AuthServer.ValidateSession),
		unary[AuthServer](AuthServiceName, "Logout", AuthServer.Logout),
	},
}

var licenseServiceDesc = grpc.ServiceDesc{
	ServiceName: LicenseServiceName,
	HandlerType: (*LicenseServer)(nil),
	Methods: []grpc.MethodDesc{
		unary[LicenseServer](LicenseServiceName, "Validate", LicenseServer.Validate),
		unary[LicenseServer](LicenseServiceName, "Activate", LicenseServer.Activate),
		unary[LicenseServer](LicenseServiceName, "CheckSaved", LicenseServer.CheckSaved),
		unary[LicenseServer](LicenseServiceName, "Current", LicenseServer.Current),
		unary[LicenseServer](LicenseServiceName, "Clear", LicenseServer.Clear),
		unary[LicenseServer](LicenseServiceName, "ExpiringSoon", LicenseServer.ExpiringSoon),
	},
}

var adminServiceDesc = grpc.ServiceDesc{
	ServiceName: AdminServiceName,
	HandlerType: (*AdminServer)(nil),
	Methods: []grpc.MethodDesc{
		unary[AdminServer](AdminServiceName, "ListUsers", AdminServer.ListUsers),
		unary[AdminServer](AdminServiceName, "CreateUser", AdminServer.CreateUser),
		unary[AdminServer](AdminServiceName, "UpdateUser", AdminServer.UpdateUser),
		unary[AdminServer](AdminServiceName, "DeleteUser", AdminServer.DeleteUser),
		unary[AdminServer](AdminServiceName, "SetUserActive", AdminServer.SetUserActive),
		unary[AdminServer](AdminServiceName, "ListLicenses", AdminServer.ListLicenses),
		unary[AdminServer](AdminServiceName, "CreateLicense", AdminServer.CreateLicense),
		unary[AdminServer](AdminServiceName, "CreateLicenses", AdminServer.CreateLicenses),
		unary[AdminServer](AdminServiceName, "UpdateLicense", AdminServer.UpdateLicense),
		unary[AdminServer](AdminServiceName, "DeleteLicense", AdminServer.DeleteLicense),
		unary[AdminServer](AdminServiceName, "Statistics", AdminServer.Statistics),
		unary[AdminServer](AdminServiceName, "PurgeSessions", AdminServer.PurgeSessions),
	},
}

// unary adapts a typed server method to a grpc.MethodDesc.
func unary[S, Req, Resp any](service, method string, fn func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return fn(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return fn(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
