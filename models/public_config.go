package models

// PublicConfig is the part of the server configuration that is safe to
// expose to browsers. Clients use the two origins to build links and to
// load untrusted content in the sandbox.
type PublicConfig struct {
	HTTPUnsafeOrigin string `json:"httpUnsafeOrigin"`
	HTTPSafeOrigin   string `json:"httpSafeOrigin"`
	AdminEmail       string `json:"adminEmail"`
	Version          string `json:"version"`
}
