package constants

// Centralized constants for headers, env keys, routes and API messages.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGoogleClientID      = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret  = "GOOGLE_CLIENT_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"
	EnvConfigPath          = "LOCKSUM_CONFIG"
	EnvDBPath              = "LOCKSUM_DB"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// Session / Cookie names
	CookieSessionName = "l_session"

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"}
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteStatusPage = "/"
	RouteHealth     = "/health"
	RouteVersion    = "/version"

	RouteAuthPing           = "/auth/ping"
	RouteAuthRegister       = "/auth/register"
	RouteAuthLogin          = "/auth/login"
	RouteAuthMe             = "/auth/me"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"

	RouteCustomers    = "/customers"
	RouteCustomerByID = "/customers/:customerID"

	RouteItems    = "/items"
	RouteItemByID = "/items/:itemID"

	RouteInvoices         = "/invoices"
	RouteInvoiceByID      = "/invoices/:invoiceID"
	RouteInvoiceLines     = "/invoices/:invoiceID/lines"
	RouteInvoiceLineByID  = "/invoices/:invoiceID/lines/:lineID"
	RouteInvoiceSetStatus = "/invoices/:invoiceID/status"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrMissingGoogleEnv = "Missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET in environment"

	ErrEmailAlreadyRegistered = "Email already registered"
	ErrInvalidCredentials     = "Invalid email or password"
	ErrUserDisabled           = "User is disabled"
	ErrNoCompanyMembership    = "User has no company membership"
	ErrFailedCreateAccount    = "Failed to create account"

	ErrCustomerNotFound     = "Customer not found"
	ErrFailedFetchCustomers = "Failed to fetch customers"
	ErrFailedSaveCustomer   = "Failed to save customer"
	ErrFailedDeleteCustomer = "Failed to delete customer"
	ErrCustomerNameRequired = "Customer name is required"
	ErrCustomerNameExceeds  = "Customer name exceeds 200 characters"

	ErrItemNotFound     = "Item not found"
	ErrFailedFetchItems = "Failed to fetch items"
	ErrFailedSaveItem   = "Failed to save item"
	ErrFailedDeleteItem = "Failed to delete item"
	ErrItemNameRequired = "Item name is required"
	ErrItemNameExceeds  = "Item name exceeds 200 characters"
	ErrItemSKUExceeds   = "SKU exceeds 64 characters"
	ErrNegativeAmount   = "Amount must not be negative"

	ErrInvoiceNotFound      = "Invoice not found"
	ErrInvoiceLineNotFound  = "Invoice line not found"
	ErrFailedFetchInvoices  = "Failed to fetch invoices"
	ErrFailedSaveInvoice    = "Failed to save invoice"
	ErrFailedDeleteInvoice  = "Failed to delete invoice"
	ErrFailedSaveLine       = "Failed to save invoice line"
	ErrFailedDeleteLine     = "Failed to delete invoice line"
	ErrQuantityNotPositive  = "Quantity must be greater than zero"
	ErrUnitPriceRequired    = "unit_price_cents is required when item_id is not provided"
	ErrCurrencyExceeds      = "Currency exceeds 10 characters"
	ErrInvalidStatusFmt     = "Invalid status: %s"
	ErrInvalidTransitionFmt = "Invalid transition: %s -> %s"
	ErrInvoiceLockedFmt     = "Invoice is %s and cannot be edited"

	ErrFailedExchangeToken    = "Failed to exchange token"
	ErrFailedGetUserInfo      = "Failed to get user info"
	ErrFailedReadUserData     = "Failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "No email in Google profile"
	ErrFailedCreateSession    = "Failed to create session"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"

	ErrPasswordTooShort = "Password must be at least 8 characters"
	ErrPasswordTooLong  = "Password too long for bcrypt (max 72 bytes)"
	ErrCompanyNameShort = "Company name must be at least 2 characters"
	ErrEmailRequired    = "email is required"
)

// Logging field names
const (
	LogFieldAddr       = "addr"
	LogFieldUserID     = "user_id"
	LogFieldCompanyID  = "company_id"
	LogFieldInvoiceID  = "invoice_id"
	LogFieldCustomerID = "customer_id"
	LogFieldItemID     = "item_id"
	LogFieldEmail      = "email"
)
