// Package server exposes a token store over HTTP.
//
// It provides:
//   - Bearer token middleware backed by the store's IsAuthed
//   - GET /auth, answering 204 for a valid token
//   - POST /tokens, minting a new token for an already authenticated caller
//   - Request ids and access logging through zap
//
// Callers typically construct a server via `server.New` and then expose it over HTTP:
//
//	s, _ := server.New(tokens, server.WithDefaultLifetime(time.Hour))
//	log.Fatal(s.HTTP(ctx, ":8080").ListenAndServe())
package server
