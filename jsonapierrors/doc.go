// Package jsonapierrors provides structured error types for the jsonapikit library.
//
// Import path: github.com/erraggy/jsonapikit/jsonapierrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a document that could not be decoded,
// a resource that could not be identified, and a link lookup that missed.
//
// # Error Types
//
//   - [IdentityError]: a resource object without a usable type or id
//   - [ParseError]: JSON/YAML decoding failures and non-object documents
//   - [LinkError]: a link relation that is not present
//   - [ResourceLimitError]: input exceeding a configured size limit
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrIdentity]: Matches any [IdentityError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrLinkNotFound]: Matches any [LinkError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Identity failures are fatal to the whole store:
//
//	store, err := schema.NewResources(primary, included)
//	var idErr *jsonapierrors.IdentityError
//	if errors.As(err, &idErr) {
//	    fmt.Printf("resource %s[%d] has no %s\n", idErr.Section, idErr.Index, idErr.Field)
//	}
//
// Missing links are reported with a sentinel:
//
//	if _, err := doc.Links.Next(); errors.Is(err, jsonapierrors.ErrLinkNotFound) {
//	    // last page
//	}
package jsonapierrors
