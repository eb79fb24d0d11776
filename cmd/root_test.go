package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"cap2vivo/internal/config"
	"cap2vivo/internal/repo"
	helpers "cap2vivo/test_helpers"

	minioClient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

// starts a minio container and returns a config pointed at it
func testConf(t *testing.T) (config.MapperConfig, *minioClient.Client) {
	ctx := context.Background()

	container, err := helpers.MinioRun(ctx, "minio/minio:RELEASE.2024-06-13T22-53-53Z")
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	endpoint, _, err := helpers.ConnectionStrings(ctx, container)
	require.NoError(t, err)
	host := strings.Split(endpoint, ":")[0]
	port, err := strconv.Atoi(strings.Split(endpoint, ":")[1])
	require.NoError(t, err)

	conf := config.MapperConfig{
		Minio: config.MinioConfig{
			Address:   host,
			Port:      port,
			Accesskey: container.Username,
			Secretkey: container.Password,
			Bucket:    helpers.TestBucket,
		},
		Vivo: config.VivoConfig{
			Persontemplate: "https://vivo.example.edu/profile/{id}",
			Orgtemplate:    "https://vivo.example.edu/org/{alias}",
			Degreetemplate: "https://vivo.example.edu/degree/{degree}",
		},
		Degrees: config.DegreesConfig{
			Catalogfile: filepath.Join("..", "assets", "academic-degrees.jsonld"),
		},
		Prov: config.ProvConfig{
			Entityuri:    "https://vivo.example.edu/prov/mapping-entity",
			Entityname:   "CAP to VIVO profile mapping",
			Activityuri:  "https://vivo.example.edu/prov/mapping-activity",
			Activityname: "CAP to VIVO mapping run",
			Agenturi:     "https://vivo.example.edu/prov/mapping-agent",
			Agentname:    "Research Directory Services",
			Orguri:       "https://vivo.example.edu/prov/mapping-org",
			Orgname:      "Example University Libraries",
		},
	}

	mc, err := minioClient.New(endpoint, &minioClient.Options{
		Creds: credentials.NewStaticV4(container.Username, container.Password, ""),
	})
	require.NoError(t, err)

	return conf, mc
}

// Test the mapper when run against a fresh bucket seeded with raw profiles
func TestRunE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	conf, mc := testConf(t)
	ctx := context.Background()

	seed := repo.New(mc, helpers.TestBucket)
	require.NoError(t, seed.SetupBucket())
	require.NoError(t, seed.SaveRawProfile(ctx, 100, []byte(`{"profileId": 100,
		"names": {"legal": {"firstName": "Ada", "lastName": "Lovelace"}},
		"affiliations": {"capFaculty": true},
		"meta": {"links": []}}`)))
	require.NoError(t, seed.SaveRawProfile(ctx, 42, []byte(`{"profileId": 42,
		"names": {"legal": {"firstName": "Grace", "lastName": "Hopper"}},
		"affiliations": {"capFaculty": true},
		"postdoctoralAdvisees": [{"profileId": 777, "label": {"text": "Ada Lovelace"}}]}`)))

	cli := &MapperClient{}
	require.NoError(t, cli.Run(conf))

	// one own graph and one prov graph per profile
	helpers.AssertObjectCount(t, mc, "graphs/100.ttl", 1)
	helpers.AssertObjectCount(t, mc, "graphs/100_prov.ttl", 1)
	helpers.AssertObjectCount(t, mc, "graphs/42.ttl", 1)

	// only the advisor produced outside statements
	helpers.AssertObjectCount(t, mc, "graphs/100_extras.ttl", 0)
	helpers.AssertObjectCount(t, mc, "graphs/42_extras.ttl", 1)

	// the mapping agent graph is written once per run
	helpers.AssertObjectCount(t, mc, "graphs/mapping-agent.ttl", 1)

	// a second run is additive and idempotent
	require.NoError(t, cli.Run(conf))
	helpers.AssertObjectCount(t, mc, "graphs/42_extras.ttl", 1)
}

// Profiles missing required fields fail without aborting the batch
func TestRunE2EContinuesPastBadProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	conf, mc := testConf(t)
	ctx := context.Background()

	seed := repo.New(mc, helpers.TestBucket)
	require.NoError(t, seed.SetupBucket())
	require.NoError(t, seed.SaveRawProfile(ctx, 7, []byte(`{"profileId": 7}`)))
	require.NoError(t, seed.SaveRawProfile(ctx, 100, []byte(`{"profileId": 100,
		"names": {"legal": {"firstName": "Ada", "lastName": "Lovelace"}},
		"affiliations": {"capFaculty": true}}`)))

	cli := &MapperClient{}
	err := cli.Run(conf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 profiles failed")

	// nothing was persisted for the bad profile, the good one went through
	helpers.AssertObjectCount(t, mc, "graphs/7.ttl", 0)
	helpers.AssertObjectCount(t, mc, "graphs/100.ttl", 1)
}

func TestRunOrgsE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	conf, mc := testConf(t)

	orgFile := filepath.Join(t.TempDir(), "orgs.json")
	require.NoError(t, os.WriteFile(orgFile, []byte(`{"alias": "root", "type": "ROOT",
		"name": "Example U", "orgCodes": ["EX"], "children": [
			{"alias": "med", "type": "SCHOOL", "name": "School of Medicine"}
		]}`), 0644))

	cli := &MapperClient{SetupBuckets: true}
	require.NoError(t, cli.RunOrgs(conf, []string{orgFile}))

	// parent and child each stored as an independent document with a graph
	helpers.AssertObjectCount(t, mc, "orgs/root.json", 1)
	helpers.AssertObjectCount(t, mc, "orgs/med.json", 1)
	helpers.AssertObjectCount(t, mc, "graphs/orgs/", 2)
}
