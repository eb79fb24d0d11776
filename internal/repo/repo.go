package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"cap2vivo/internal/graph"
	"cap2vivo/internal/orgs"

	log "github.com/sirupsen/logrus"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tidwall/gjson"
)

// Object key layout inside the bucket.
const (
	rawProfilePrefix = "profiles/raw/"
	orgPrefix        = "orgs/"
	graphPrefix      = "graphs/"
	orgGraphPrefix   = "graphs/orgs/"
	agentGraphKey    = "graphs/mapping-agent.ttl"
)

// Repository is the document store for raw CAP records and the file side
// of graph persistence. Backed by minio; keys are stable per profile id or
// org alias so rewrites are idempotent.
type Repository struct {
	DefaultBucket string
	Client        *minio.Client
}

// NewConnection sets up minio and initializes the repository client.
func NewConnection(port int, address, secretKey, accessKey string, region string, ssl bool, defaultBucket string) (*Repository, error) {
	var endpoint string
	if port == 0 {
		endpoint = address
	} else {
		endpoint = fmt.Sprintf("%s:%d", address, port)
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: ssl,
	}
	if region == "" {
		log.Debug("no region set")
	} else {
		opts.Region = region
	}

	minioClient, err := minio.New(endpoint, opts)
	return &Repository{Client: minioClient, DefaultBucket: defaultBucket}, err
}

// New wraps an existing minio client.
func New(mc *minio.Client, defaultBucket string) *Repository {
	return &Repository{Client: mc, DefaultBucket: defaultBucket}
}

func (r *Repository) SetupBucket() error {
	if exists, err := r.Client.BucketExists(context.Background(), r.DefaultBucket); err != nil {
		return err
	} else if !exists {
		if err := r.Client.MakeBucket(context.Background(), r.DefaultBucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	return r.validateBucket()
}

func (r *Repository) validateBucket() error {
	if exists, err := r.Client.BucketExists(context.Background(), r.DefaultBucket); err != nil {
		return err
	} else if !exists {
		return fmt.Errorf("bucket %s does not exist", r.DefaultBucket)
	}
	return nil
}

// RawProfile fetches the cached source record for one profile id.
func (r *Repository) RawProfile(ctx context.Context, profileID int64) ([]byte, error) {
	key := fmt.Sprintf("%s%d.json", rawProfilePrefix, profileID)
	obj, err := r.Client.GetObject(ctx, r.DefaultBucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("profile %d: %w", profileID, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("profile %d: %w", profileID, err)
	}
	return data, nil
}

// SaveRawProfile caches a fetched source record.
func (r *Repository) SaveRawProfile(ctx context.Context, profileID int64, doc []byte) error {
	key := fmt.Sprintf("%s%d.json", rawProfilePrefix, profileID)
	return r.putObject(ctx, key, doc, "application/json", nil)
}

// ListRawProfiles returns the profile ids with a cached source record.
func (r *Repository) ListRawProfiles(ctx context.Context) ([]int64, error) {
	var ids []int64
	for object := range r.Client.ListObjects(ctx, r.DefaultBucket,
		minio.ListObjectsOptions{Recursive: true, Prefix: rawProfilePrefix}) {
		if object.Err != nil {
			return nil, object.Err
		}
		var id int64
		if _, err := fmt.Sscanf(object.Key, rawProfilePrefix+"%d.json", &id); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// SaveOrganization persists an org document, recursively persisting nested
// children as independent top-level documents first. A failed child write
// is logged and does not stop the remaining writes.
func (r *Repository) SaveOrganization(ctx context.Context, rawOrg []byte) error {
	var errs []error
	for _, doc := range orgs.Flatten(rawOrg) {
		alias := gjson.GetBytes(doc, "alias").String()
		if alias == "" {
			errs = append(errs, errors.New("org document without an alias"))
			log.Error("org document without an alias, skipping")
			continue
		}
		key := orgPrefix + alias + ".json"
		if err := r.putObject(ctx, key, doc, "application/json", nil); err != nil {
			errs = append(errs, fmt.Errorf("org %s: %w", alias, err))
			log.Errorf("org %s: %s", alias, err)
		}
	}
	return errors.Join(errs...)
}

// SaveProfileGraphs writes the three derived graphs for one profile. The
// extras file is only written when the outside graph is non-empty.
func (r *Repository) SaveProfileGraphs(ctx context.Context, profileID int64, own, outside, provenance *graph.Graph) error {
	usermeta := map[string]string{"profileId": fmt.Sprintf("%d", profileID)}

	key := fmt.Sprintf("%s%d.ttl", graphPrefix, profileID)
	if err := r.putObject(ctx, key, []byte(own.NTriples()), "text/turtle", usermeta); err != nil {
		return fmt.Errorf("profile %d graph: %w", profileID, err)
	}

	if outside != nil && outside.Len() > 0 {
		key = fmt.Sprintf("%s%d_extras.ttl", graphPrefix, profileID)
		if err := r.putObject(ctx, key, []byte(outside.NTriples()), "text/turtle", usermeta); err != nil {
			return fmt.Errorf("profile %d extras graph: %w", profileID, err)
		}
	}

	key = fmt.Sprintf("%s%d_prov.ttl", graphPrefix, profileID)
	if err := r.putObject(ctx, key, []byte(provenance.NTriples()), "text/turtle", usermeta); err != nil {
		return fmt.Errorf("profile %d prov graph: %w", profileID, err)
	}

	return nil
}

// SaveOrgGraph writes the derived VIVO graph for one organization.
func (r *Repository) SaveOrgGraph(ctx context.Context, alias string, g *graph.Graph) error {
	key := orgGraphPrefix + alias + ".ttl"
	usermeta := map[string]string{"alias": alias}
	if err := r.putObject(ctx, key, []byte(g.NTriples()), "text/turtle", usermeta); err != nil {
		return fmt.Errorf("org %s graph: %w", alias, err)
	}
	return nil
}

// SaveAgentGraph persists the fixed mapping-agent graph. The key is
// constant and the content deterministic, so repeat saves are idempotent.
func (r *Repository) SaveAgentGraph(ctx context.Context, g *graph.Graph) error {
	return r.putObject(ctx, agentGraphKey, []byte(g.NTriples()), "text/turtle", nil)
}

func (r *Repository) putObject(ctx context.Context, key string, data []byte, contentType string, usermeta map[string]string) error {
	b := bytes.NewBuffer(data)
	_, err := r.Client.PutObject(ctx, r.DefaultBucket, key, b, int64(b.Len()),
		minio.PutObjectOptions{ContentType: contentType, UserMetadata: usermeta})
	return err
}
