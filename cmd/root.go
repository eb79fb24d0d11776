package cmd

import (
	"path/filepath"

	"cap2vivo/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:              "cap2vivo",
	TraverseChildren: true,
	Short:            "Map CAP research-directory profiles to VIVO-ISF linked data.",
	Run: func(cmd *cobra.Command, args []string) {

		cli := &MapperClient{}
		cli.Address, _ = cmd.Flags().GetString("address")
		cli.Port, _ = cmd.Flags().GetString("port")
		cli.Bucket, _ = cmd.Flags().GetString("bucket")
		cli.Profiles, _ = cmd.Flags().GetString("profiles")
		cli.Config, _ = cmd.Flags().GetString("cfg")
		cli.SecretKey, _ = cmd.Flags().GetString("secretkey")
		cli.AccessKey, _ = cmd.Flags().GetString("accesskey")
		cli.SSL, _ = cmd.Flags().GetBool("ssl")
		cli.SetupBuckets, _ = cmd.Flags().GetBool("setup")

		logLevel, _ := cmd.Flags().GetString("log-level")

		switch logLevel {
		case "DEBUG":
			log.SetLevel(log.DebugLevel)
		case "INFO":
			log.SetLevel(log.InfoLevel)
		case "WARN":
			log.SetLevel(log.WarnLevel)
		case "ERROR":
			log.SetLevel(log.ErrorLevel)
		case "FATAL":
			log.SetLevel(log.FatalLevel)
		default:
			log.Fatalf("Invalid log level: %s", logLevel)
		}
		log.SetFormatter(&log.JSONFormatter{})

		conf, err := config.ReadMapperConfig(filepath.Dir(cli.Config), filepath.Base(cli.Config))
		if err != nil {
			log.Fatal(err)
		}

		if err := cli.Run(conf); err != nil {
			log.Fatal(err)
		}
	},
}

// Adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	// Persistent flags defined here will be global for the entire application.
	rootCmd.PersistentFlags().String("cfg", "configs/cap2vivo.yaml", "full path to config file")
	rootCmd.PersistentFlags().String("profiles", "", "comma separated profile ids to map (default: all cached profiles)")
	rootCmd.PersistentFlags().String("address", "", "FQDN for the minio server")
	rootCmd.PersistentFlags().String("port", "", "Port for the minio server")
	rootCmd.PersistentFlags().String("bucket", "", "The bucket in which to place mapper objects")
	rootCmd.PersistentFlags().String("accesskey", "", "Minio access key")
	rootCmd.PersistentFlags().String("secretkey", "", "Minio secret key")
	rootCmd.PersistentFlags().Bool("ssl", false, "Use SSL when connecting to minio")
	rootCmd.PersistentFlags().Bool("setup", false, "Setup buckets in minio")
	rootCmd.PersistentFlags().String("log-level", "INFO", "the log level to use for the mapper logger")
}
