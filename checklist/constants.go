package checklist

// The expected-name lists below are the contract under test. They are
// process-wide constants: defined once, never mutated, shared read-only
// by every check. Order matters: error output follows list order.

// RequiredRootFields are the top-level keys every contract document
// must define.
var RequiredRootFields = []string{"openapi", "info", "paths"}

// RequiredInfoFields are the keys required under the info section.
var RequiredInfoFields = []string{"title", "version"}

// RequiredOperationFields are the keys required on every operation.
var RequiredOperationFields = []string{"summary", "operationId", "tags", "responses"}

// OperationMethods are the HTTP methods recognized as operations when
// validating path items. Any other path-item key is treated as vendor
// metadata and ignored.
var OperationMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// EndpointMethods are the methods counted as endpoints for statistics.
// HEAD and OPTIONS are valid operations but are not counted.
var EndpointMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// ExpectedPaths are the API paths the service contract must expose.
var ExpectedPaths = []string{
	"/health",
	"/customers",
	"/customers/{id}",
	"/payment-intents",
	"/payment-intents/{id}/confirm",
	"/products",
	"/prices",
	"/subscriptions",
	"/subscriptions/{id}",
}

// ExpectedSchemas are the component schema names the contract must define.
var ExpectedSchemas = []string{
	"Customer",
	"CreateCustomerRequest",
	"ListCustomersResponse",
	"PaymentIntent",
	"CreatePaymentIntentRequest",
	"ConfirmPaymentIntentRequest",
	"Product",
	"CreateProductRequest",
	"Price",
	"CreatePriceRequest",
	"Subscription",
	"CreateSubscriptionRequest",
	"Error",
}

// ExpectedResponses are the reusable response names the contract must define.
var ExpectedResponses = []string{"BadRequest", "NotFound", "InternalServerError"}
