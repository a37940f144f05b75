package constants

// Roles
const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

// Order request statuses
const (
	ORDER_STATUS_NEW       = "new_request"
	ORDER_STATUS_REVIEWED  = "reviewed"
	ORDER_STATUS_APPROVED  = "approved"
	ORDER_STATUS_REJECTED  = "rejected"
	ORDER_STATUS_COMPLETED = "completed"
	ORDER_STATUS_ARCHIVED  = "archived"
)

// OrderStatuses lists every status the admin UI may set. The transition
// graph is deliberately unrestricted: any status can be set from any other,
// including archived directly from new_request.
var OrderStatuses = []string{
	ORDER_STATUS_NEW,
	ORDER_STATUS_REVIEWED,
	ORDER_STATUS_APPROVED,
	ORDER_STATUS_REJECTED,
	ORDER_STATUS_COMPLETED,
	ORDER_STATUS_ARCHIVED,
}

// Image galleries
const (
	GALLERY_CAROUSEL     = "carousel"
	GALLERY_WEDDINGS     = "weddings"
	GALLERY_FESTIVALS    = "festivals"
	GALLERY_CUSTOM_CAKES = "custom-cakes"
)

var Galleries = []string{
	GALLERY_CAROUSEL,
	GALLERY_WEDDINGS,
	GALLERY_FESTIVALS,
	GALLERY_CUSTOM_CAKES,
}

// Error messages
const (
	ERROR_INPUT               = "Invalid input"
	ERROR_INTERNAL_ERROR      = "Internal server error"
	MISSING_LOGIN_INPUT       = "Username and password are required"
	INVALID_USERNAME          = "Username does not exist"
	INVALID_PASSWORD          = "Incorrect password"
	ACCOUNT_NOT_ACTIVE        = "Account is deactivated"
	ADMIN_ONLY                = "Admin permission required"
	DATA_INPUT_IS_NOT_NUMBER  = "Parameter must be a number"
	ORDERS_PAUSED_DEFAULT_MSG = "We are not taking orders at the moment, please check back soon"
)

// Redis keys
const (
	CART_KEY_PREFIX    = "cart:"
	ORDER_FEED_CHANNEL = "orders:new"
)
