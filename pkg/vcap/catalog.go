package vcap

import (
	"encoding/json"
	"os"
	"sort"
)

// VCAPServices is the name of the environment variable that carries the
// bound-service catalog. It is exported so callers and tests can set or
// inspect the variable themselves.
const VCAPServices = "VCAP_SERVICES"

// Environment looks up one variable from a configuration source,
// returning its raw value and whether the variable is present. It
// matches the signature of os.LookupEnv, the default source.
type Environment func(key string) (string, bool)

// DecodeCatalog reads VCAP_SERVICES from the process environment and
// decodes it into a ServiceCatalog. The variable is read once per call;
// nothing is cached between calls.
func DecodeCatalog() (ServiceCatalog, error) {
	return DecodeCatalogFrom(os.LookupEnv)
}

// DecodeCatalogFrom decodes the catalog from the supplied environment.
// Tests can pass a fixed lookup instead of mutating the real process
// environment.
func DecodeCatalogFrom(env Environment) (ServiceCatalog, error) {
	raw, ok := env(VCAPServices)
	if !ok {
		return nil, ErrEnvNotSet
	}

	return ParseCatalog(raw)
}

// ParseCatalog decodes raw VCAP_SERVICES text. Either the whole catalog
// decodes or the call fails: syntactically invalid JSON, a top-level
// value that is not an object, a catalog value that is not an array, and
// a binding without its credentials object all yield ErrMalformedJSON.
func ParseCatalog(raw string) (ServiceCatalog, error) {
	var entries map[string]json.RawMessage

	err := json.Unmarshal([]byte(raw), &entries)
	if err != nil {
		return nil, ErrMalformedJSON
	}

	// JSON null decodes into a nil map without error; the catalog must
	// be an object.
	if entries == nil {
		return nil, ErrMalformedJSON
	}

	catalog := make(ServiceCatalog, len(entries))

	for name, entry := range entries {
		var bindings []ServiceBinding

		err := json.Unmarshal(entry, &bindings)
		if err != nil {
			return nil, ErrMalformedJSON
		}

		// Same blind spot at the entry level: null decodes into a nil
		// slice without error, but every entry must be an array.
		if bindings == nil {
			return nil, ErrMalformedJSON
		}

		catalog[name] = bindings
	}

	return catalog, nil
}

// LookupCredentials projects the credentials of every binding of the
// named service type, preserving catalog order. An entry with zero
// bindings yields an empty slice, not an error; a name with no entry
// yields a ServiceNotFoundError. The catalog is not mutated.
func LookupCredentials(catalog ServiceCatalog, service string) ([]Credentials, error) {
	bindings, err := catalog.Bindings(service)
	if err != nil {
		return nil, err
	}

	creds := make([]Credentials, 0, len(bindings))
	for _, binding := range bindings {
		creds = append(creds, binding.Credentials)
	}

	return creds, nil
}

// GetCredentials decodes the catalog from the process environment and
// projects the credentials of the named service type, short-circuiting
// on the first failure.
func GetCredentials(service string) ([]Credentials, error) {
	catalog, err := DecodeCatalog()
	if err != nil {
		return nil, err
	}

	return LookupCredentials(catalog, service)
}

// Names returns the service-type names present in the catalog, sorted
// for stable iteration.
func (c ServiceCatalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Bindings returns the bindings of the named service type, or a
// ServiceNotFoundError when the catalog has no entry for it.
func (c ServiceCatalog) Bindings(service string) ([]ServiceBinding, error) {
	bindings, ok := c[service]
	if !ok {
		return nil, &ServiceNotFoundError{Service: service}
	}

	return bindings, nil
}
