package config

import (
	"context"
	"fmt"

	"github.com/databricks/databricks-sdk-go/config"
	"gopkg.in/ini.v1"
)

// Profile is a named section of a .databrickscfg style file.
type Profile struct {
	Name     string
	Config   *config.Config
	HTTPPath string
}

type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	host := section.Key("host").String()
	token := section.Key("token").String()
	if host == "" || token == "" {
		return nil, fmt.Errorf("profile %s requires host and token", name)
	}

	return &Profile{
		Name: name,
		Config: &config.Config{
			Host:  host,
			Token: token,
		},
		HTTPPath: section.Key("http_path").String(),
	}, nil
}
