// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are consulted in order (CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For, X-Real-IP) and the first valid address wins; RemoteAddr
// is the fallback. Only deploy behind proxies that overwrite these headers,
// otherwise clients can choose their own address.
//
//	r.Use(clientip.Middleware)
//	ip := clientip.FromContext(r.Context())
package clientip
