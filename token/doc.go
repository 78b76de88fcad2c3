// Package token defines the bearer credential minted and validated by the
// auther store: an opaque URL-safe random identifier paired with an absolute
// expiry time.
//
// Fresh tokens are created with MintNew; tokens read back from storage are
// rebuilt with Reconstruct. New accepts options for callers that decide
// between the two at runtime.
package token
