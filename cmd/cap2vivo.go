package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cap2vivo/internal/config"
	"cap2vivo/internal/degrees"
	"cap2vivo/internal/mapper"
	"cap2vivo/internal/profiles"
	"cap2vivo/internal/prov"
	"cap2vivo/internal/repo"
	"cap2vivo/internal/vivo"

	log "github.com/sirupsen/logrus"
)

type MapperClient struct {
	Address      string // address for minio
	Port         string // port for minio
	Bucket       string // minio bucket holding raw records and graphs
	Profiles     string // comma separated profile ids to map
	Config       string // full path to config
	SecretKey    string // secret key for minio
	AccessKey    string // access key for minio
	SSL          bool   // use SSL for HTTP requests
	SetupBuckets bool   // setup buckets before mapping
}

// applyOverrides merges the cli args over the config. Cli args take priority.
func (cli *MapperClient) applyOverrides(conf config.MapperConfig) (config.MapperConfig, error) {
	if cli.Address != "" {
		conf.Minio.Address = cli.Address
	}
	if cli.Port != "" {
		portAsInt, err := strconv.Atoi(cli.Port)
		if err != nil {
			return conf, err
		}
		conf.Minio.Port = portAsInt
	}
	if cli.AccessKey != "" {
		conf.Minio.Accesskey = cli.AccessKey
	}
	if cli.SecretKey != "" {
		conf.Minio.Secretkey = cli.SecretKey
	}
	if cli.Bucket != "" {
		conf.Minio.Bucket = cli.Bucket
	}
	if cli.SSL {
		conf.Minio.Ssl = true
	}
	return conf, nil
}

// Run maps the selected profiles. Cli args take priority over config.
func (cli *MapperClient) Run(conf config.MapperConfig) error {

	conf, err := cli.applyOverrides(conf)
	if err != nil {
		return err
	}

	mc, err := conf.Minio.NewClient()
	if err != nil {
		return fmt.Errorf("error creating minio client: %v", err)
	}
	repository := repo.New(mc, conf.Minio.Bucket)

	if cli.SetupBuckets {
		log.Info("Setting up buckets inside minio")
		if err := repository.SetupBucket(); err != nil {
			log.Error("error making buckets for Setup call", err)
			return err
		}
	}

	// the degree catalog and URI scheme are fixed for the whole run
	catalog, err := degrees.Load(conf.Degrees.Catalogfile, conf.Degrees.Remoteurl)
	if err != nil {
		return err
	}
	uris, err := vivo.NewURIs(conf.Vivo.Persontemplate, conf.Vivo.Orgtemplate, conf.Vivo.Degreetemplate)
	if err != nil {
		return err
	}
	annotator := prov.New(conf.Prov)

	ctx := context.Background()

	// the agent graph is fixed per process; saving it again is harmless
	if err := repository.SaveAgentGraph(ctx, annotator.AgentGraph()); err != nil {
		log.Errorf("saving mapping agent graph: %s", err)
	}

	ids, err := selectProfiles(cli.Profiles, conf.Cap.Sampleprofiles)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		log.Info("no profile ids given, mapping all cached profiles")
		ids, err = repository.ListRawProfiles(ctx)
		if err != nil {
			return err
		}
	}

	results := mapProfiles(ctx, repository, uris, annotator, catalog, ids)

	processed, failed := 0, 0
	for _, result := range results {
		if result.Failed() {
			failed++
		} else {
			processed++
		}
	}
	log.Infof("mapped %d profiles, %d failed", processed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d profiles failed to map", failed, len(results))
	}
	return nil
}

// mapProfiles runs each profile through the mapper. A failure is local to
// its profile: nothing is persisted for it and the batch moves on.
func mapProfiles(ctx context.Context, repository *repo.Repository, uris *vivo.URIs,
	annotator *prov.Annotator, catalog *degrees.Catalog, ids []int64) []mapper.Result {

	var results []mapper.Result
	for _, id := range ids {
		result := mapper.Result{ProfileID: id}

		raw, err := repository.RawProfile(ctx, id)
		if err != nil {
			log.Errorf("fetching profile %d: %s", id, err)
			result.Err = err
			results = append(results, result)
			continue
		}

		profile, err := profiles.Parse(raw)
		if err != nil {
			log.Errorf("parsing profile %d: %s", id, err)
			result.Err = err
			results = append(results, result)
			continue
		}

		m := mapper.New(profile, uris, annotator, catalog)
		own := m.ProfileGraph()
		outside := m.OutsideGraph()
		provenance := m.ProvenanceGraph()
		result.Warnings = m.Errs()

		if err := repository.SaveProfileGraphs(ctx, id, own, outside, provenance); err != nil {
			log.Errorf("persisting graphs for profile %d: %s", id, err)
			result.Err = err
			results = append(results, result)
			continue
		}

		log.Debugf("mapped profile %d: %d own, %d outside statements", id, own.Len(), outside.Len())
		results = append(results, result)
	}
	return results
}

// selectProfiles merges the --profiles flag with the configured sample ids.
// The flag wins when present.
func selectProfiles(flagValue string, sampleIDs []int64) ([]int64, error) {
	if flagValue == "" {
		return sampleIDs, nil
	}
	var ids []int64
	for _, part := range strings.Split(flagValue, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.New("invalid profile id: " + part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
