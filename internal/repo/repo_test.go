package repo

import (
	"context"
	"io"
	"testing"

	"cap2vivo/internal/graph"
	helpers "cap2vivo/test_helpers"

	minioClient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/tidwall/gjson"
)

// spins up a minio container and returns a ready repository
func testRepository(t *testing.T) *Repository {
	ctx := context.Background()
	container, err := helpers.MinioRun(ctx, "minio/minio:RELEASE.2024-06-13T22-53-53Z")
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	endpoint, _, err := helpers.ConnectionStrings(ctx, container)
	require.NoError(t, err)

	mc, err := minioClient.New(endpoint, &minioClient.Options{
		Creds: credentials.NewStaticV4(container.Username, container.Password, ""),
	})
	require.NoError(t, err)

	r := New(mc, helpers.TestBucket)
	require.NoError(t, r.SetupBucket())
	return r
}

func TestRawProfileRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	r := testRepository(t)
	ctx := context.Background()

	doc := []byte(`{"profileId": 100, "names": {"legal": {"lastName": "Lovelace"}}}`)
	require.NoError(t, r.SaveRawProfile(ctx, 100, doc))

	got, err := r.RawProfile(ctx, 100)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))

	ids, err := r.ListRawProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, ids)
}

func TestSaveOrganizationFlattensChildren(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	r := testRepository(t)
	ctx := context.Background()

	raw := []byte(`{"alias": "root", "type": "ROOT", "name": "Example U", "children": [
		{"alias": "med", "type": "SCHOOL", "name": "School of Medicine"}
	]}`)
	require.NoError(t, r.SaveOrganization(ctx, raw))

	metadata, objects, err := helpers.GetBucketObjects(r.Client, "orgs/")
	require.NoError(t, err)
	require.Len(t, metadata, 2)

	for _, obj := range objects {
		data, err := io.ReadAll(obj)
		require.NoError(t, err)
		assert.False(t, gjson.GetBytes(data, "children").Exists())
	}
}

func TestSaveProfileGraphs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	r := testRepository(t)
	ctx := context.Background()

	own := graph.New()
	own.AddURI("urn:a", "urn:p", "urn:b")
	outside := graph.New()
	provenance := graph.New()
	provenance.AddURI("urn:a", "urn:derived", "urn:src")

	require.NoError(t, r.SaveProfileGraphs(ctx, 100, own, outside, provenance))

	// empty outside graph writes no extras file
	helpers.AssertObjectCount(t, r.Client, "graphs/100.ttl", 1)
	helpers.AssertObjectCount(t, r.Client, "graphs/100_extras.ttl", 0)
	helpers.AssertObjectCount(t, r.Client, "graphs/100_prov.ttl", 1)

	outside.AddURI("urn:other", "urn:p", "urn:b")
	require.NoError(t, r.SaveProfileGraphs(ctx, 100, own, outside, provenance))
	helpers.AssertObjectCount(t, r.Client, "graphs/100_extras.ttl", 1)
}

func TestSaveAgentGraphIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	r := testRepository(t)
	ctx := context.Background()

	g := graph.New()
	g.AddURI("urn:agent", "urn:type", "urn:Agent")
	require.NoError(t, r.SaveAgentGraph(ctx, g))
	require.NoError(t, r.SaveAgentGraph(ctx, g))

	helpers.AssertObjectCount(t, r.Client, "graphs/mapping-agent.ttl", 1)
}
