package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"hotel-reservation/pkg/utils"

	"github.com/getsops/sops/v3/decrypt"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var configNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

const sharedProperties = "application"

// ConfigService serves property files for the other services.
type ConfigService interface {
	GetProperties(ctx context.Context, application, profile string) (*utils.PropertySource, error)
}

type configService struct {
	dir string
	log *zap.Logger
}

func NewConfigService(dir string, log *zap.Logger) ConfigService {
	return &configService{
		dir: dir,
		log: log.With(zap.String("service", "config")),
	}
}

// GetProperties merges application.<ext> (shared by every service),
// <app>.<ext> and <app>-<profile>.<ext>, later files winning on conflicts.
// Plain yaml/yml/json files are read as is; <name>.enc.json is decrypted
// with sops first.
func (s *configService) GetProperties(ctx context.Context, application, profile string) (*utils.PropertySource, error) {
	if !configNamePattern.MatchString(application) || application == "." || application == ".." {
		return nil, fmt.Errorf("invalid application name %q", application)
	}
	if !configNamePattern.MatchString(profile) || profile == "." || profile == ".." {
		return nil, fmt.Errorf("invalid profile name %q", profile)
	}

	v := viper.New()
	found := false

	for _, name := range []string{sharedProperties, application, application + "-" + profile} {
		ok, err := s.mergeFile(v, name)
		if err != nil {
			s.log.Error("Failed to read property file",
				zap.Error(err),
				zap.String("application", application),
				zap.String("profile", profile))
			return nil, err
		}
		found = found || ok
	}

	if !found {
		return nil, fmt.Errorf("properties for %s/%s not found", application, profile)
	}

	return &utils.PropertySource{
		Name:     application,
		Profiles: []string{profile},
		Source:   v.AllSettings(),
	}, nil
}

// mergeFile merges the first existing variant of name into v.
func (s *configService) mergeFile(v *viper.Viper, name string) (bool, error) {
	for _, ext := range []string{"yaml", "yml", "json"} {
		path := filepath.Join(s.dir, name+"."+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("read %s: %w", path, err)
		}
		return true, mergeProperties(v, ext, data, path)
	}

	path := filepath.Join(s.dir, name+".enc.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	plain, err := decrypt.Data(data, "json")
	if err != nil {
		return false, fmt.Errorf("decrypt %s: %w", path, err)
	}
	return true, mergeProperties(v, "json", plain, path)
}

func mergeProperties(v *viper.Viper, format string, data []byte, path string) error {
	v.SetConfigType(format)
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
