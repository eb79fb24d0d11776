package mapper

import (
	"fmt"

	"cap2vivo/internal/profiles"
	"cap2vivo/internal/vivo"
)

const defaultCountry = "United States"

// buildVCard embeds the contact sub-block under the person's vcard URI.
// Every node is optional except the name: missing source data means an
// omitted node, never an empty one. Contacts keep one representative
// candidate per kind; full phone fan-out with digits-only dedup belongs to
// the full RDF-graph variant of the mapper.
func (m *Mapper) buildVCard(person string) {
	vcard := m.uris.VCard(m.profile.ID)
	m.own.AddURI(person, vivo.HasContactInfo, vcard)
	m.own.AddURI(vcard, vivo.ContactInfoOf, person)
	m.own.AddURI(vcard, vivo.RDFType, vivo.VCardIndividual)

	m.buildName(vcard)
	m.buildTitle(vcard)
	m.buildLink(vcard)
	m.buildContact(vcard)
	m.buildAddresses(vcard)
}

// name parts are copied verbatim from the legal name, empty strings and all
func (m *Mapper) buildName(vcard string) {
	name := vcard + "#name"
	m.own.AddURI(vcard, vivo.VCardHasName, name)
	m.own.AddURI(name, vivo.RDFType, vivo.VCardName)
	m.own.AddLiteral(name, vivo.VCardGivenName, m.profile.Legal.First)
	m.own.AddLiteral(name, vivo.MiddleName, m.profile.Legal.Middle)
	m.own.AddLiteral(name, vivo.VCardFamilyName, m.profile.Legal.Last)
}

func (m *Mapper) buildTitle(vcard string) {
	title := cleanTitle(m.profile.ShortTitle)
	if title == "" {
		return
	}
	node := vcard + "#title"
	m.own.AddURI(vcard, vivo.VCardHasTitle, node)
	m.own.AddURI(node, vivo.RDFType, vivo.VCardTitle)
	m.own.AddLiteral(node, vivo.VCardTitleProp, title)
}

// the link node exists only when a public profile URL resolves
func (m *Mapper) buildLink(vcard string) {
	href := m.profile.Resolve(profiles.RelPublic)
	if href == "" {
		return
	}
	node := vcard + "#link"
	m.own.AddURI(vcard, vivo.VCardHasURL, node)
	m.own.AddURI(node, vivo.RDFType, vivo.VCardURLClass)
	m.own.AddLiteral(node, vivo.VCardURLProp, href)
}

func (m *Mapper) buildContact(vcard string) {
	contact := m.profile.Contact()
	if contact == nil {
		return
	}

	if len(contact.Emails) > 0 {
		node := vcard + "#email"
		m.own.AddURI(vcard, vivo.VCardHasEmail, node)
		m.own.AddURI(node, vivo.RDFType, vivo.VCardEmail)
		m.own.AddLiteral(node, vivo.VCardEmailProp, contact.Emails[0])
	}
	if len(contact.Phones) > 0 {
		node := vcard + "#phone"
		m.own.AddURI(vcard, vivo.VCardHasTelephone, node)
		m.own.AddURI(node, vivo.RDFType, vivo.VCardTelephone)
		m.own.AddLiteral(node, vivo.VCardTelephoneProp, contact.Phones[0])
	}
	if len(contact.Faxes) > 0 {
		node := vcard + "#fax"
		m.own.AddURI(vcard, vivo.VCardHasTelephone, node)
		m.own.AddURI(node, vivo.RDFType, vivo.VCardFax)
		m.own.AddLiteral(node, vivo.VCardTelephoneProp, contact.Faxes[0])
	}
}

func (m *Mapper) buildAddresses(vcard string) {
	for i, office := range m.profile.Offices {
		node := fmt.Sprintf("%s#address-%d", vcard, i+1)
		m.own.AddURI(vcard, vivo.VCardHasAddress, node)
		m.own.AddURI(node, vivo.RDFType, vivo.VCardAddress)

		country := office.Country
		if country == "" {
			country = defaultCountry
		}
		m.own.AddLiteral(node, vivo.VCardCountryName, country)
		if office.Region != "" {
			m.own.AddLiteral(node, vivo.VCardRegion, office.Region)
		}
		if office.Locality != "" {
			m.own.AddLiteral(node, vivo.VCardLocality, office.Locality)
		}
		if office.PostalCode != "" {
			m.own.AddLiteral(node, vivo.VCardPostalCode, office.PostalCode)
		}
		street := office.Line1
		if office.Line2 != "" {
			street += ", " + office.Line2
		}
		if street != "" {
			m.own.AddLiteral(node, vivo.VCardStreetAddress, street)
		}
	}
}
