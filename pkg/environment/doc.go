// Package environment tags request contexts with the deployment environment
// so handlers and logs can tell production traffic from development.
package environment
