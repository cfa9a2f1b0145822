package domain

// CompanyProfile is the business identity printed on invoice headers.
// Records from older installations may have any subset of fields
// filled in, so each field resolves through layered sources rather
// than being read directly.
type CompanyProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}

// Merge fills empty fields of p from fallback, leaving populated
// fields untouched. Sources are applied most-authoritative first.
func (p CompanyProfile) Merge(fallback CompanyProfile) CompanyProfile {
	if p.Name == "" {
		p.Name = fallback.Name
	}
	if p.Address == "" {
		p.Address = fallback.Address
	}
	if p.Phone == "" {
		p.Phone = fallback.Phone
	}
	if p.Email == "" {
		p.Email = fallback.Email
	}
	if p.TaxID == "" {
		p.TaxID = fallback.TaxID
	}
	return p
}
