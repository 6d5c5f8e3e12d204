package passport

var eyeColors = map[string]bool{
	"amb": true, "blu": true, "brn": true, "gry": true,
	"grn": true, "hzl": true, "oth": true,
}

// HasRequiredFields reports whether every field except the country id is
// present, regardless of its content.
func (p Passport) HasRequiredFields() bool {
	return p.BirthYear != nil &&
		p.IssueYear != nil &&
		p.ExpirationYear != nil &&
		p.Height != nil &&
		p.HairColor != nil &&
		p.EyeColor != nil &&
		p.PassportID != nil
}

// IsValid reports whether every required field is present and well formed.
func (p Passport) IsValid() bool {
	return yearIn(p.BirthYear, 1920, 2002) &&
		yearIn(p.IssueYear, 2010, 2020) &&
		yearIn(p.ExpirationYear, 2020, 2030) &&
		validHeight(p.Height) &&
		validHairColor(p.HairColor) &&
		p.EyeColor != nil && eyeColors[*p.EyeColor] &&
		validPassportID(p.PassportID)
}

func yearIn(v *int, lo, hi int) bool {
	return v != nil && *v >= lo && *v <= hi
}

func validHeight(h *Height) bool {
	if h == nil {
		return false
	}
	switch h.Unit {
	case UnitCentimeters:
		return h.Value >= 150 && h.Value <= 193
	case UnitInches:
		return h.Value >= 59 && h.Value <= 76
	default:
		return false
	}
}

func validHairColor(v *string) bool {
	if v == nil || len(*v) != 7 || (*v)[0] != '#' {
		return false
	}
	for _, c := range (*v)[1:] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

func validPassportID(v *string) bool {
	if v == nil || len(*v) != 9 {
		return false
	}
	for _, c := range *v {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
