// Package client calls an auther server with a bearer token.
//
// Requests are authorized through an oauth2 static token source, so any
// *http.Client built by this package can also be reused for other services
// protected by the same store.
//
// Example:
//
//	cli := client.New("http://127.0.0.1:8080", identifier)
//	ok, _ := cli.Check(ctx)
//	minted, _ := cli.Mint(ctx, time.Hour)
//	fmt.Println(minted.AccessToken, minted.Expiry)
package client
