package vivo

// Namespace prefixes for the vocabularies the mapper emits.
const (
	RDF   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS  = "http://www.w3.org/2000/01/rdf-schema#"
	FOAF  = "http://xmlns.com/foaf/0.1/"
	Core  = "http://vivoweb.org/ontology/core#"
	VCard = "http://www.w3.org/2006/vcard/ns#"
	OBO   = "http://purl.obolibrary.org/obo/"
	Prov  = "http://www.w3.org/ns/prov#"
	XSD   = "http://www.w3.org/2001/XMLSchema#"
	DC    = "http://purl.org/dc/terms/"
)

// Core RDF terms.
const (
	RDFType   = RDF + "type"
	RDFSLabel = RDFS + "label"
)

// Person and organization classes.
const (
	FOAFPerson       = FOAF + "Person"
	FOAFOrganization = FOAF + "Organization"

	FacultyMember   = Core + "FacultyMember"
	GraduateStudent = Core + "GraduateStudent"
	Postdoctoral    = Core + "Postdoc"
	NonAcademic     = Core + "NonAcademic"

	University = Core + "University"
	School     = Core + "School"
	Division   = Core + "Division"
	Department = Core + "Department"
	Center     = Core + "Center"
	Program    = Core + "Program"
)

// Relationship classes and properties.
const (
	Position        = Core + "Position"
	AdvisorRole     = Core + "AdvisorRole"
	AdviseeRole     = Core + "AdviseeRole"
	PostdocAdvising = Core + "PostdocOrFellowAdvisingRelationship"
	AwardedDegree   = Core + "AwardedDegree"
	Overview        = Core + "overview"
	RelatedBy       = Core + "relatedBy"
	Relates         = Core + "relates"
	MiddleName      = Core + "middleName"
	AssignedDegree  = Core + "relatedDegree"
	DCIdentifier    = DC + "identifier"
	BearerOf        = OBO + "RO_0000053"
	HasContactInfo  = OBO + "ARG_2000028"
	ContactInfoOf   = OBO + "ARG_2000029"
)

// VCard classes and properties for the contact sub-block.
const (
	VCardIndividual = VCard + "Individual"
	VCardName       = VCard + "Name"
	VCardTitle      = VCard + "Title"
	VCardURLClass   = VCard + "URL"
	VCardEmail      = VCard + "Email"
	VCardTelephone  = VCard + "Telephone"
	VCardFax        = VCard + "Fax"
	VCardAddress    = VCard + "Address"

	VCardHasName      = VCard + "hasName"
	VCardHasTitle     = VCard + "hasTitle"
	VCardHasURL       = VCard + "hasURL"
	VCardHasEmail     = VCard + "hasEmail"
	VCardHasTelephone = VCard + "hasTelephone"
	VCardHasAddress   = VCard + "hasAddress"

	VCardGivenName     = VCard + "givenName"
	VCardFamilyName    = VCard + "familyName"
	VCardTitleProp     = VCard + "title"
	VCardURLProp       = VCard + "url"
	VCardEmailProp     = VCard + "email"
	VCardTelephoneProp = VCard + "telephone"

	VCardCountryName   = VCard + "country-name"
	VCardRegion        = VCard + "region"
	VCardLocality      = VCard + "locality"
	VCardPostalCode    = VCard + "postal-code"
	VCardStreetAddress = VCard + "street-address"
)

// PROV terms used by the provenance annotator.
const (
	ProvEntity          = Prov + "Entity"
	ProvActivity        = Prov + "Activity"
	ProvAgent           = Prov + "Agent"
	ProvOrganization    = Prov + "Organization"
	ProvWasDerivedFrom  = Prov + "wasDerivedFrom"
	ProvWasGeneratedBy  = Prov + "wasGeneratedBy"
	ProvGeneratedAtTime = Prov + "generatedAtTime"
	ProvUsed            = Prov + "used"
	ProvActedOnBehalfOf = Prov + "actedOnBehalfOf"
	ProvWasAssociated   = Prov + "wasAssociatedWith"
)

// XSDDateTime types the UTC timestamp literals the annotator writes.
const XSDDateTime = XSD + "dateTime"
