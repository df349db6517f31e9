package handler

type ContextKey string

var (
	PrincipalCtxKey ContextKey = "principal"
	BearerTokenCtx  ContextKey = "bearerToken"
	AuthClaimsCtx   ContextKey = "authClaims"
	UserInfoCtx     ContextKey = "userInfo"
	EmployerCtx     ContextKey = "employer"
	JobCtx          ContextKey = "job"
	ApplicationCtx  ContextKey = "application"
)
