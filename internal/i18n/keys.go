package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyInvalidQuantity maps pricing.ErrInvalidQuantity.
	ErrKeyInvalidQuantity = "error.invalid_quantity"
	// ErrKeyNegativeAmount maps pricing.ErrNegativeAmount.
	ErrKeyNegativeAmount = "error.negative_amount"
	// ErrKeyInvalidDistance maps pricing.ErrInvalidDistance.
	ErrKeyInvalidDistance = "error.invalid_distance"
	// ErrKeyAmountOverflow maps pricing.ErrAmountOverflow.
	ErrKeyAmountOverflow = "error.amount_overflow"
	// ErrKeyInvalidTiers reports a tier configuration that breaks the rules.
	ErrKeyInvalidTiers = "error.invalid_tiers"
	// ErrKeyInvalidProductID reports a blank product id.
	ErrKeyInvalidProductID = "error.invalid_product_id"
	// ErrKeyTierConfigNotFound reports a product without an active configuration.
	ErrKeyTierConfigNotFound = "error.tier_config_not_found"
	// ErrKeyStorageUnavailable reports a disabled or failing tier store.
	ErrKeyStorageUnavailable = "error.storage_unavailable"
	// ErrKeyVersionConflict reports a lost race between two tier writers.
	ErrKeyVersionConflict = "error.version_conflict"
)

// Storefront message keys. Values are fmt templates.
const (
	// BannerKeyFree takes no arguments.
	BannerKeyFree = "banner.free"
	// BannerKeyClose takes the formatted amount still needed.
	BannerKeyClose = "banner.close"
	// BannerKeyStandard takes the formatted fee.
	BannerKeyStandard = "banner.standard"
	// UpsellKey takes units needed, formatted per-unit saving and discount percent.
	UpsellKey = "upsell.next_tier"
)
