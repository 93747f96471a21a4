package config

import (
	"context"
	"fmt"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry lists the data-source profiles of an ini file:
//
//	[pipeline]
//	path  = /var/lib/reports/pipeline.db
//	limit = 5000
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.DataSourceProfile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.DataSourceProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.DataSourceProfile{}, fmt.Errorf("profile %s not found", name)
	}

	path := section.Key("path").String()
	if path == "" {
		return domain.DataSourceProfile{}, fmt.Errorf("profile %s has no path", name)
	}

	return domain.DataSourceProfile{
		Name:  name,
		Path:  path,
		Limit: section.Key("limit").MustInt(0),
	}, nil
}
