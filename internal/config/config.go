package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"

	log "github.com/sirupsen/logrus"
)

type MapperConfig struct {
	Minio   MinioConfig
	Cap     CapConfig
	Vivo    VivoConfig
	Degrees DegreesConfig
	Prov    ProvConfig
}

type MinioConfig struct {
	Address   string
	Port      int
	Ssl       bool
	Accesskey string
	Secretkey string
	Bucket    string
	Region    string
}

func (mcfg MinioConfig) NewClient() (*minio.Client, error) {
	var endpoint string
	if mcfg.Port == 0 {
		endpoint = mcfg.Address
	} else {
		endpoint = fmt.Sprintf("%s:%d", mcfg.Address, mcfg.Port)
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(mcfg.Accesskey, mcfg.Secretkey, ""),
		Secure: mcfg.Ssl,
	}
	if mcfg.Region == "" {
		log.Debug("no region set")
	} else {
		log.Warn("region set; for GCS or AWS, may cause issues with minio")
		opts.Region = mcfg.Region
	}

	return minio.New(endpoint, opts)
}

// CapConfig points at the source directory API. The HTTP client itself is a
// collaborator; the mapper only needs the sample profile ids to process.
type CapConfig struct {
	Baseurl        string
	Sampleprofiles []int64
}

// VivoConfig carries the URI templates. These must not change between runs:
// every derived identifier hangs off them.
type VivoConfig struct {
	Persontemplate string
	Orgtemplate    string
	Degreetemplate string
}

type DegreesConfig struct {
	Catalogfile string
	Remoteurl   string
}

// ProvConfig names the fixed mapping entity/activity/agent/organization
// asserted once per process by the provenance annotator.
type ProvConfig struct {
	Entityuri    string
	Entityname   string
	Activityuri  string
	Activityname string
	Agenturi     string
	Agentname    string
	Orguri       string
	Orgname      string
}

// ensures all struct fields are present in the YAML config and errors if any are missing
func checkMissingFields(v *viper.Viper, structType reflect.Type, parentKey string) error {
	var missingFields []string

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldName := field.Tag.Get("mapstructure")
		if fieldName == "" {
			fieldName = strings.ToLower(field.Name) // Default to lowercase field name
		}

		fullKey := fieldName
		if parentKey != "" {
			fullKey = parentKey + "." + fieldName
		}

		if field.Type.Kind() == reflect.Struct {
			// Recursively check nested structs
			if err := checkMissingFields(v, field.Type, fullKey); err != nil {
				missingFields = append(missingFields, err.Error())
			}
		} else if !v.IsSet(fullKey) {
			missingFields = append(missingFields, fullKey)
		}
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required fields: %v", strings.Join(missingFields, ", "))
	}

	return nil
}

func ReadMapperConfig(cfgPath, filename string) (MapperConfig, error) {
	v := viper.New()
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))
	v.SetConfigName(nameWithoutExt)
	v.AddConfigPath(cfgPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return MapperConfig{}, err
	}

	// Check for missing required fields before unmarshaling
	if err := checkMissingFields(v, reflect.TypeOf(MapperConfig{}), ""); err != nil {
		return MapperConfig{}, err
	}

	var config MapperConfig
	if err := v.UnmarshalExact(&config); err != nil {
		return MapperConfig{}, err
	}

	return config, nil
}
