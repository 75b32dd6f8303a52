// Package vcap decodes the VCAP_SERVICES environment variable published
// by Cloud Foundry style platforms into a typed catalog of service
// bindings, and projects the credentials bound to a service-type name.
//
// # Overview
//
// When a platform binds services to an application it publishes one JSON
// object in VCAP_SERVICES, keyed by service-type name, each key holding
// the bindings of that type. DecodeCatalog reads and decodes that object;
// LookupCredentials projects the credentials of one service type out of a
// decoded catalog; GetCredentials chains the two.
//
//	creds, err := vcap.GetCredentials("p.mysql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	db, err := sql.Open("mysql", creds[0].URI)
//
// Every call decodes the variable afresh; nothing is cached and nothing
// is mutated after construction, so the package is safe for concurrent
// use without synchronization.
//
// # Errors
//
// Decoding fails with ErrEnvNotSet when the variable is absent and with
// ErrMalformedJSON when its value does not decode into the catalog shape
// (including a binding that omits its required credentials object).
// Lookup of an unknown service-type name fails with a
// ServiceNotFoundError carrying the requested name; branch on it with
// IsServiceNotFound.
//
// # Testing
//
// Tests can decode from a fixed source instead of the real process
// environment through DecodeCatalogFrom, or parse raw text directly with
// ParseCatalog.
package vcap
