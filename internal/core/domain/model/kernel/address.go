package kernel

import "strings"

// Address is a delivery address. All fields are optional: a pickup order or a
// customer without a stored default carries an empty Address.
type Address struct {
	street     string
	city       string
	postalCode string
	phone      string
	notes      string
}

// NewAddress trims and stores the given fields.
func NewAddress(street, city, postalCode, phone, notes string) Address {
	return Address{
		street:     strings.TrimSpace(street),
		city:       strings.TrimSpace(city),
		postalCode: strings.TrimSpace(postalCode),
		phone:      strings.TrimSpace(phone),
		notes:      strings.TrimSpace(notes),
	}
}

func (a Address) Street() string { return a.street }
func (a Address) City() string { return a.city }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Phone() string { return a.phone }
func (a Address) Notes() string { return a.notes }

// IsEmpty reports whether no street was given; street is what makes an address deliverable.
func (a Address) IsEmpty() bool {
	return a.street == ""
}

// WithNotes returns a copy carrying delivery notes.
func (a Address) WithNotes(notes string) Address {
	a.notes = strings.TrimSpace(notes)
	return a
}

// Or returns a when it is set, fallback otherwise.
func (a Address) Or(fallback Address) Address {
	if a.IsEmpty() {
		return fallback
	}
	return a
}

func (a Address) IsEqual(other Address) bool {
	return a == other
}

func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.street, strings.TrimSpace(a.postalCode + " " + a.city)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
