package mailaddr

// MarshalYAML emits the address as a plain YAML scalar. The signature
// matches the yaml.Marshaler contract structurally, so no YAML package is
// imported here.
func (e Email) MarshalYAML() (any, error) {
	return e.value, nil
}

// UnmarshalYAML decodes a YAML scalar through New. It uses the func-style
// unmarshaler contract, which yaml.v3 still honors and which keeps this
// package free of YAML imports.
func (e *Email) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	email, err := New(s)
	if err != nil {
		return err
	}
	*e = email
	return nil
}
