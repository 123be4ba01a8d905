// Package devmode provides the shared credential for trying the client
// without signing up for a key.
package devmode

// APIKey is the public demonstration key accepted by api.data.gov services.
// It is rate limited per IP and should never be used in production.
const APIKey = "DEMO_KEY"
