// Package auther issues, persists and validates expiring bearer tokens.
//
// The package glues the token store with its configuration and HTTP
// transport. It exposes two entry points:
//  1. NewStore – opens the tokens file described by a config.Config and
//  2. NewServer – wraps a store with the HTTP auth endpoints.
//
// Example:
//
//	cfg, _ := config.Load(ctx, afs.New(), "auther.yaml")
//	tokens, _ := auther.NewStore(ctx, cfg)
//	minted, _ := tokens.Issue(ctx, time.Hour)
//	ok, _ := tokens.IsAuthed(ctx, minted.Identifier())
package auther
