package vcap

import (
	"encoding/json"
	"errors"
)

// Credentials holds the authentication and connection material of one
// service binding. Every field is optional on the wire; fields absent
// from the payload decode to their zero value. Three fields travel under
// a different name on the wire: JDBCURL as "jdbcUrl", APIURI as
// "http_api_uri" and LicenseKey as "licenseKey".
type Credentials struct {
	URI            string `json:"uri,omitempty"              yaml:"uri,omitempty"`
	JDBCURL        string `json:"jdbcUrl,omitempty"          yaml:"jdbc_url,omitempty"`
	APIURI         string `json:"http_api_uri,omitempty"     yaml:"api_uri,omitempty"`
	LicenseKey     string `json:"licenseKey,omitempty"       yaml:"license_key,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"    yaml:"client_secret,omitempty"`
	ClientID       string `json:"client_id,omitempty"        yaml:"client_id,omitempty"`
	AccessTokenURI string `json:"access_token_uri,omitempty" yaml:"access_token_uri,omitempty"`
	Hostname       string `json:"hostname,omitempty"         yaml:"hostname,omitempty"`
	Username       string `json:"username,omitempty"         yaml:"username,omitempty"`
	Password       string `json:"password,omitempty"         yaml:"password,omitempty"`
	Name           string `json:"name,omitempty"             yaml:"name,omitempty"`
	Port           int    `json:"port,omitempty"             yaml:"port,omitempty"`
}

// ServiceBinding describes one service instance bound to the
// application. Multiple bindings of the same service type can coexist
// (for example several config servers), so a catalog entry is a slice.
type ServiceBinding struct {
	Name         string      `json:"name,omitempty"          yaml:"name,omitempty"`
	InstanceName string      `json:"instance_name,omitempty" yaml:"instance_name,omitempty"`
	BindingName  string      `json:"binding_name,omitempty"  yaml:"binding_name,omitempty"`
	Label        string      `json:"label,omitempty"         yaml:"label,omitempty"`
	Credentials  Credentials `json:"credentials"             yaml:"credentials"`
}

// errMissingCredentials rejects binding objects that omit the required
// credentials object. ParseCatalog surfaces it as ErrMalformedJSON.
var errMissingCredentials = errors.New("service binding has no credentials object")

// UnmarshalJSON decodes a binding object, failing when the required
// credentials object is absent. A pointer shadow field distinguishes an
// absent object from a present-but-empty one.
func (b *ServiceBinding) UnmarshalJSON(data []byte) error {
	type alias ServiceBinding

	aux := struct {
		Credentials *Credentials `json:"credentials"`
		*alias
	}{alias: (*alias)(b)}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	if aux.Credentials == nil {
		return errMissingCredentials
	}

	b.Credentials = *aux.Credentials

	return nil
}

// ServiceCatalog maps a service-type name to the bindings of that type.
// Binding order within an entry preserves payload order.
type ServiceCatalog map[string][]ServiceBinding
