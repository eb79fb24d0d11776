package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cap2vivo/internal/config"
	"cap2vivo/internal/orgs"
	"cap2vivo/internal/repo"
	"cap2vivo/internal/vivo"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var orgsCmd = &cobra.Command{
	Use:              "orgs [org files...]",
	TraverseChildren: true,
	Short:            "Persist organization records and their VIVO graphs",
	Long: `Reads organization JSON files, stores each org (and every nested child)
as an independent document, and derives a typed VIVO graph per org.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli := &MapperClient{}
		cli.Address, _ = cmd.Flags().GetString("address")
		cli.Port, _ = cmd.Flags().GetString("port")
		cli.Bucket, _ = cmd.Flags().GetString("bucket")
		cli.Config, _ = cmd.Flags().GetString("cfg")
		cli.SecretKey, _ = cmd.Flags().GetString("secretkey")
		cli.AccessKey, _ = cmd.Flags().GetString("accesskey")
		cli.SSL, _ = cmd.Flags().GetBool("ssl")
		cli.SetupBuckets, _ = cmd.Flags().GetBool("setup")

		conf, err := config.ReadMapperConfig(filepath.Dir(cli.Config), filepath.Base(cli.Config))
		if err != nil {
			log.Fatal(err)
		}

		if err := cli.RunOrgs(conf, args); err != nil {
			log.Fatal(err)
		}
	},
}

// RunOrgs persists the given organization files. Each nested child becomes
// an independent document; a failed org is logged and the batch continues.
func (cli *MapperClient) RunOrgs(conf config.MapperConfig, files []string) error {

	conf, err := cli.applyOverrides(conf)
	if err != nil {
		return err
	}

	repository, err := repo.NewConnection(conf.Minio.Port, conf.Minio.Address,
		conf.Minio.Secretkey, conf.Minio.Accesskey, conf.Minio.Region, conf.Minio.Ssl, conf.Minio.Bucket)
	if err != nil {
		return fmt.Errorf("error creating minio client: %v", err)
	}

	if cli.SetupBuckets {
		log.Info("Setting up buckets inside minio")
		if err := repository.SetupBucket(); err != nil {
			log.Error("error making buckets for Setup call", err)
			return err
		}
	}

	uris, err := vivo.NewURIs(conf.Vivo.Persontemplate, conf.Vivo.Orgtemplate, conf.Vivo.Degreetemplate)
	if err != nil {
		return err
	}
	orgMapper := orgs.NewMapper(uris)

	ctx := context.Background()

	processed, failed := 0, 0
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			log.Errorf("reading org file %s: %s", file, err)
			failed++
			continue
		}

		if err := repository.SaveOrganization(ctx, raw); err != nil {
			log.Errorf("persisting orgs from %s: %s", file, err)
			failed++
			continue
		}

		// one derived graph per flattened org document
		for _, doc := range orgs.Flatten(raw) {
			org := orgs.Parse(doc)
			if org.Alias == "" {
				continue
			}
			entity := orgMapper.Map(org)
			if err := repository.SaveOrgGraph(ctx, org.Alias, entity.Graph()); err != nil {
				log.Errorf("persisting graph for org %s: %s", org.Alias, err)
				failed++
				continue
			}
			processed++
		}
	}

	log.Infof("persisted %d orgs, %d failed", processed, failed)
	if failed > 0 {
		return fmt.Errorf("%d orgs failed to persist", failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(orgsCmd)
}
