package service

import (
	"context"
)

type GuildConfigService struct {
	cfgs GuildConfigRepo
}

func NewGuildConfigService(cfgs GuildConfigRepo) *GuildConfigService {
	return &GuildConfigService{cfgs: cfgs}
}

// Todos los mutadores devuelven changed=false cuando la entrada ya
// estaba / no estaba: en ese caso NO se persiste nada.

func (s *GuildConfigService) AddChannel(ctx context.Context, guildID, channelID string) (bool, error) {
	cfg, err := s.cfgs.Get(ctx, guildID)
	if err != nil {
		return false, err
	}
	if !cfg.AddChannel(channelID) {
		return false, nil
	}
	return true, s.cfgs.Save(ctx, cfg)
}

func (s *GuildConfigService) RemoveChannel(ctx context.Context, guildID, channelID string) (bool, error) {
	cfg, err := s.cfgs.Get(ctx, guildID)
	if err != nil {
		return false, err
	}
	if !cfg.RemoveChannel(channelID) {
		return false, nil
	}
	return true, s.cfgs.Save(ctx, cfg)
}

func (s *GuildConfigService) AddRole(ctx context.Context, guildID, roleID string) (bool, error) {
	cfg, err := s.cfgs.Get(ctx, guildID)
	if err != nil {
		return false, err
	}
	if !cfg.AddRole(roleID) {
		return false, nil
	}
	return true, s.cfgs.Save(ctx, cfg)
}

func (s *GuildConfigService) RemoveRole(ctx context.Context, guildID, roleID string) (bool, error) {
	cfg, err := s.cfgs.Get(ctx, guildID)
	if err != nil {
		return false, err
	}
	if !cfg.RemoveRole(roleID) {
		return false, nil
	}
	return true, s.cfgs.Save(ctx, cfg)
}
