package api

// Backend route paths.
const (
	PathFirebaseLogin = "/auth/firebase-login"
	PathOTPLogin      = "/auth/otp"
	PathProducts      = "/catalog/products"
	PathProfile       = "/users/me"
	PathOrders        = "/orders"
	PathMyOrders      = "/orders/my"
)
