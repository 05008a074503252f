package contextkeys

// ContextKey is the type used for values shared through contexts and the
// Gin request context.
type ContextKey string

const (
	// AccountContextKey holds the authenticated *models.Account.
	AccountContextKey ContextKey = "account"
)
