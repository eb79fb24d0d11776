package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullProfile = `{
	"profileId": 2512,
	"names": {
		"legal": {"firstName": "Ada", "middleName": "King", "lastName": "Lovelace"},
		"preferred": {"firstName": "Ada", "lastName": "Lovelace"}
	},
	"affiliations": {"capFaculty": true, "capPhysician": true},
	"shortTitle": {"title": "Professor of Analytical Engines"},
	"bio": {"text": "Works on analytical engines."},
	"academicOffices": [
		{"city": "Stanford", "state": "California", "zip": "94305",
		 "address": "450 Serra Mall", "address2": "Building 160",
		 "phoneNumbers": ["(650) 555-0100"]}
	],
	"primaryContact": {"email": ["ada@example.edu"], "phoneNumbers": ["650-555-0100", "650-555-0101"]},
	"postdoctoralAdvisees": [
		{"profileId": 777, "label": {"text": "Grace Hopper"}},
		{"label": {"text": "No Id Here"}}
	],
	"education": [{"degree": "Ph.D.", "organization": "University of London"}],
	"meta": {"links": [
		{"rel": "https://cap.example.edu/rel/self", "href": "https://cap.example.edu/api/profiles/2512"},
		{"rel": "https://cap.example.edu/rel/public", "href": "https://profiles.example.edu/2512"}
	]},
	"lastModified": "2015-09-01T10:00:00.000-07:00"
}`

func TestParseFullProfile(t *testing.T) {
	p, err := Parse([]byte(fullProfile))
	require.NoError(t, err)

	assert.Equal(t, int64(2512), p.ID)
	assert.Equal(t, Name{First: "Ada", Middle: "King", Last: "Lovelace"}, p.Legal)
	assert.True(t, p.Faculty)
	assert.True(t, p.Physician)
	assert.False(t, p.Postdoc)
	assert.Equal(t, "Professor of Analytical Engines", p.ShortTitle)
	assert.Equal(t, "Works on analytical engines.", p.Bio)

	require.Len(t, p.Offices, 1)
	assert.Equal(t, "Stanford", p.Offices[0].Locality)
	assert.Equal(t, "", p.Offices[0].Country)

	require.NotNil(t, p.Primary)
	assert.Equal(t, []string{"ada@example.edu"}, p.Primary.Emails)
	assert.Len(t, p.Primary.Phones, 2)

	require.Len(t, p.Advisees, 2)
	assert.Equal(t, int64(777), p.Advisees[0].ProfileID)
	assert.Equal(t, int64(0), p.Advisees[1].ProfileID)

	require.Len(t, p.Education, 1)
	assert.Equal(t, "Ph.D.", p.Education[0].Degree)

	assert.Equal(t, "2015-09-01T10:00:00.000-07:00", p.LastModified)
}

func TestParseMinimalProfileDefaults(t *testing.T) {
	p, err := Parse([]byte(`{"profileId": 100, "names": {"legal": {"firstName": "Ada", "lastName": "Lovelace"}}, "affiliations": {"capFaculty": true}, "meta": {"links": []}}`))
	require.NoError(t, err)

	assert.Equal(t, "", p.Bio)
	assert.Equal(t, "", p.Legal.Middle)
	assert.Empty(t, p.Offices)
	assert.Nil(t, p.Primary)
	assert.Nil(t, p.Contact())
	assert.Empty(t, p.Advisees)
}

func TestParseMissingRequiredFields(t *testing.T) {
	_, err := Parse([]byte(`{"names": {"legal": {"lastName": "Lovelace"}}}`))
	assert.ErrorIs(t, err, ErrMissingProfileID)

	_, err = Parse([]byte(`{"profileId": 5}`))
	assert.ErrorIs(t, err, ErrMissingLegalName)
}

func TestContactFallsBackToAlternate(t *testing.T) {
	p, err := Parse([]byte(`{"profileId": 7, "names": {"legal": {"lastName": "Hopper"}},
		"alternateContact": {"email": "grace@example.edu"}}`))
	require.NoError(t, err)
	require.NotNil(t, p.Contact())
	assert.Equal(t, []string{"grace@example.edu"}, p.Contact().Emails)
}

func TestResolveLink(t *testing.T) {
	assert.Equal(t, "https://cap.example.edu/api/profiles/2512", ResolveLink([]byte(fullProfile), RelSelf))
	assert.Equal(t, "https://profiles.example.edu/2512", ResolveLink([]byte(fullProfile), RelPublic))
	assert.Equal(t, "", ResolveLink([]byte(fullProfile), "/rel/orcid"))

	p, err := Parse([]byte(fullProfile))
	require.NoError(t, err)
	assert.Equal(t, "https://profiles.example.edu/2512", p.Resolve(RelPublic))
	assert.Equal(t, "", p.Resolve("/rel/orcid"))
}
