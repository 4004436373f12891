// Package transport builds the HTTP client used to reach remote APIs.
//
// The client can route connections through a SOCKS5 proxy, follows at most
// 10 redirects, and injects a User-Agent and extra headers into every
// request, including redirected ones.
package transport
