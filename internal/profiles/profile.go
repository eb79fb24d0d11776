package profiles

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// The mapper never touches raw JSON: everything it needs is pulled into a
// fully-defaulted Profile here, so mapping logic does not have to guard
// every field access against absent keys.

var (
	ErrMissingProfileID = errors.New("profile has no positive profileId")
	ErrMissingLegalName = errors.New("profile has no legal name")
)

type Name struct {
	First  string
	Middle string
	Last   string
}

// Office is one academic office address plus its phone numbers.
type Office struct {
	Country    string
	Region     string
	Locality   string
	PostalCode string
	Line1      string
	Line2      string
	Phone      string
	Fax        string
}

// Contact keeps every candidate per kind; the simplified vcard uses the
// first of each, the full fan-out variant may use them all.
type Contact struct {
	Emails []string
	Phones []string
	Faxes  []string
}

// Advisee is a postdoctoral advisee reference. ProfileID is zero when the
// source entry carried no numeric id, which is an error the mapper surfaces.
type Advisee struct {
	ProfileID int64
	Label     string
}

type Link struct {
	Rel  string
	Href string
}

// Education is one free-text education entry; Degree feeds the resolver.
type Education struct {
	Degree string
	Org    string
}

// Profile is one CAP profile record, immutable per run.
type Profile struct {
	ID int64

	Legal     Name
	Preferred Name

	Faculty    bool
	Staff      bool
	Physician  bool
	MDStudent  bool
	MSStudent  bool
	PhDStudent bool
	Postdoc    bool

	ShortTitle   string
	Bio          string
	Offices      []Office
	Primary      *Contact
	Alternate    *Contact
	Advisees     []Advisee
	Education    []Education
	Links        []Link
	LastModified string
}

// Parse pulls a raw CAP profile document into a defaulted Profile.
// A missing profileId or legal name is a hard mapping failure.
func Parse(raw []byte) (Profile, error) {
	doc := gjson.ParseBytes(raw)

	p := Profile{
		ID:           doc.Get("profileId").Int(),
		Legal:        parseName(doc.Get("names.legal")),
		Preferred:    parseName(doc.Get("names.preferred")),
		ShortTitle:   doc.Get("shortTitle.title").String(),
		Bio:          doc.Get("bio.text").String(),
		LastModified: doc.Get("lastModified").String(),
	}
	// some CAP exports carry these as plain strings instead of objects
	if st := doc.Get("shortTitle"); p.ShortTitle == "" && st.Type == gjson.String {
		p.ShortTitle = st.String()
	}
	if bio := doc.Get("bio"); p.Bio == "" && bio.Type == gjson.String {
		p.Bio = bio.String()
	}

	aff := doc.Get("affiliations")
	p.Faculty = aff.Get("capFaculty").Bool()
	p.Staff = aff.Get("capStaff").Bool()
	p.Physician = aff.Get("capPhysician").Bool() || aff.Get("physician").Bool()
	p.MDStudent = aff.Get("capMdStudent").Bool()
	p.MSStudent = aff.Get("capMsStudent").Bool()
	p.PhDStudent = aff.Get("capPhdStudent").Bool()
	p.Postdoc = aff.Get("capPostdoc").Bool()

	doc.Get("academicOffices").ForEach(func(_, office gjson.Result) bool {
		p.Offices = append(p.Offices, parseOffice(office))
		return true
	})

	if primary := doc.Get("primaryContact"); primary.Exists() {
		c := parseContact(primary)
		p.Primary = &c
	}
	if alternate := doc.Get("alternateContact"); alternate.Exists() {
		c := parseContact(alternate)
		p.Alternate = &c
	}

	doc.Get("postdoctoralAdvisees").ForEach(func(_, advisee gjson.Result) bool {
		p.Advisees = append(p.Advisees, Advisee{
			ProfileID: advisee.Get("profileId").Int(),
			Label:     advisee.Get("label.text").String(),
		})
		return true
	})

	doc.Get("education").ForEach(func(_, edu gjson.Result) bool {
		entry := Education{
			Degree: edu.Get("degree").String(),
			Org:    edu.Get("organization").String(),
		}
		if entry.Degree != "" {
			p.Education = append(p.Education, entry)
		}
		return true
	})

	p.Links = parseLinks(raw)

	if p.ID <= 0 {
		return Profile{}, fmt.Errorf("parsing profile: %w", ErrMissingProfileID)
	}
	if !doc.Get("names.legal").Exists() || (p.Legal.First == "" && p.Legal.Last == "") {
		return Profile{}, fmt.Errorf("parsing profile %d: %w", p.ID, ErrMissingLegalName)
	}

	return p, nil
}

func parseName(name gjson.Result) Name {
	return Name{
		First:  name.Get("firstName").String(),
		Middle: name.Get("middleName").String(),
		Last:   name.Get("lastName").String(),
	}
}

func parseOffice(office gjson.Result) Office {
	return Office{
		Country:    office.Get("country").String(),
		Region:     office.Get("state").String(),
		Locality:   office.Get("city").String(),
		PostalCode: office.Get("zip").String(),
		Line1:      office.Get("address").String(),
		Line2:      office.Get("address2").String(),
		Phone:      office.Get("phoneNumbers.0").String(),
		Fax:        office.Get("fax.0").String(),
	}
}

func parseContact(contact gjson.Result) Contact {
	var c Contact
	contact.Get("email").ForEach(func(_, v gjson.Result) bool {
		c.Emails = append(c.Emails, v.String())
		return true
	})
	contact.Get("phoneNumbers").ForEach(func(_, v gjson.Result) bool {
		c.Phones = append(c.Phones, v.String())
		return true
	})
	contact.Get("fax").ForEach(func(_, v gjson.Result) bool {
		c.Faxes = append(c.Faxes, v.String())
		return true
	})
	return c
}

// Contact returns the contact block to use for the vcard: primary when
// present, otherwise alternate, otherwise nil.
func (p Profile) Contact() *Contact {
	if p.Primary != nil {
		return p.Primary
	}
	return p.Alternate
}
