package contract

import (
	"context"

	"google.golang.org/grpc"
)

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthClient calls marketmanager.Auth.
type AuthClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) *AuthClient {
	return &AuthClient{cc: cc}
}

func (c *AuthClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "/"+AuthServiceName+"/Register", in, opts)
}

func (c *AuthClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AuthLoginMethod, in, opts)
}

func (c *AuthClient) ValidateSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "/"+AuthServiceName+"/ValidateSession", in, opts)
}

func (c *AuthClient) Logout(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "/"+AuthServiceName+"/Logout", in, opts)
}

// LicenseClient calls marketmanager.License.
type LicenseClient struct {
	cc grpc.ClientConnInterface
}

func NewLicenseClient(cc grpc.ClientConnInterface) *LicenseClient {
	return &LicenseClient{cc: cc}
}

func (c *LicenseClient) Validate(ctx context.Context, in *LicenseKeyRequest, opts ...grpc.CallOption) (*ValidationResponse, error) {
	return invoke[ValidationResponse](ctx, c.cc, LicenseValidateMethod, in, opts)
}

func (c *LicenseClient) Activate(ctx context.Context, in *LicenseKeyRequest, opts ...grpc.CallOption) (*ActivationResponse, error) {
	return invoke[ActivationResponse](ctx, c.cc, LicenseActivateMethod, in, opts)
}

func (c *LicenseClient) CheckSaved(ctx context.Context, opts ...grpc.CallOption) (*ValidationResponse, error) {
	return invoke[ValidationResponse](ctx, c.cc, "/"+LicenseServiceName+"/CheckSaved", &Empty{}, opts)
}

func (c *LicenseClient) Current(ctx context.Context, opts ...grpc.CallOption) (*CurrentLicenseResponse, error) {
	return invoke[CurrentLicenseResponse](ctx, c.cc, "/"+LicenseServiceName+"/Current", &Empty{}, opts)
}

func (c *LicenseClient) Clear(ctx context.Context, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "/"+LicenseServiceName+"/Clear", &Empty{}, opts)
}

func (c *LicenseClient) ExpiringSoon(ctx context.Context, in *ExpiringSoonRequest, opts ...grpc.CallOption) (*ExpiringSoonResponse, error) {
	return invoke[ExpiringSoonResponse](ctx, c.cc, "/"+LicenseServiceName+"/ExpiringSoon", in, opts)
}

// AdminClient calls marketmanager.Admin. The session token must be attached
// as "authorization: Bearer <token>" metadata.
type AdminClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminClient(cc grpc.ClientConnInterface) *AdminClient {
	return &AdminClient{cc: cc}
}

func (c *AdminClient) ListUsers(ctx context.Context, opts ...grpc.CallOption) (*UsersResponse, error) {
	return invoke[UsersResponse](ctx, c.cc, AdminMethodPrefix+"ListUsers", &Empty{}, opts)
}

func (c *AdminClient) CreateUser(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, AdminMethodPrefix+"CreateUser", in, opts)
}

func (c *AdminClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, AdminMethodPrefix+"UpdateUser", in, opts)
}

func (c *AdminClient) DeleteUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, AdminMethodPrefix+"DeleteUser", in, opts)
}

func (c *AdminClient) SetUserActive(ctx context.Context, in *SetUserActiveRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, AdminMethodPrefix+"SetUserActive", in, opts)
}

func (c *AdminClient) ListLicenses(ctx context.Context, opts ...grpc.CallOption) (*LicensesResponse, error) {
	return invoke[LicensesResponse](ctx, c.cc, AdminMethodPrefix+"ListLicenses", &Empty{}, opts)
}

func (c *AdminClient) CreateLicense(ctx context.Context, in *CreateLicenseRequest, opts ...grpc.CallOption) (*LicenseResponse, error) {
	return invoke[LicenseResponse](ctx, c.cc, AdminMethodPrefix+"CreateLicense", in, opts)
}

func (c *AdminClient) CreateLicenses(ctx context.Context, in *CreateLicensesRequest, opts ...grpc.CallOption) (*LicensesResponse, error) {
	return invoke[LicensesResponse](ctx, c.cc, AdminMethodPrefix+"CreateLicenses", in, opts)
}

func (c *AdminClient) UpdateLicense(ctx context.Context, in *UpdateLicenseRequest, opts ...grpc.CallOption) (*LicenseResponse, error) {
	return invoke[LicenseResponse](ctx, c.cc, AdminMethodPrefix+"UpdateLicense", in, opts)
}

func (c *AdminClient) DeleteLicense(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, AdminMethodPrefix+"DeleteLicense", in, opts)
}

func (c *AdminClient) Statistics(ctx context.Context, opts ...grpc.CallOption) (*StatisticsResponse, error) {
	return invoke[StatisticsResponse](ctx, c.cc, AdminMethodPrefix+"Statistics", &Empty{}, opts)
}

func (c *AdminClient) PurgeSessions(ctx context.Context, opts ...grpc.CallOption) (*PurgeResponse, error) {
	return invoke[PurgeResponse](ctx, c.cc, AdminMethodPrefix+"PurgeSessions", &Empty{}, opts)
}
