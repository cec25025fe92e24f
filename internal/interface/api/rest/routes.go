package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth   = RouteApiV1 + "/auth"
	RouteLogin  = RouteAuth + "/login"
	RouteSignup = RouteAuth + "/signup"

	// users
	RouteUsersMe = RouteApiV1 + "/users/me"

	// documents
	RouteDocuments           = RouteApiV1 + "/documents"
	RouteDocument            = RouteDocuments + "/:doc_id"
	RouteDocumentsByCategory = RouteDocuments + "/category/:category"
	RouteDocumentFiles       = RouteDocuments + "/files/*file_path"

	// profile
	RouteProfile = RouteApiV1 + "/profile"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
