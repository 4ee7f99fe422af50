// Package domain contains the core model for confcheck.
//
// The domain does not depend on YAML parsing or the filesystem. Infra adapters
// produce these types and classify their failures with OpError.
package domain
