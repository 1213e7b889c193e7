package domain

import "time"

// GuildConfig: dónde y quiénes pueden gestionar juegos en un guild.
// Se crea vacía en la primera lectura si no existe.
type GuildConfig struct {
	GuildID            string
	ManagementChannels []string
	ManagementRoles    []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (c *GuildConfig) HasChannel(channelID string) bool {
	for _, id := range c.ManagementChannels {
		if id == channelID {
			return true
		}
	}
	return false
}

func (c *GuildConfig) HasRole(roleID string) bool {
	for _, id := range c.ManagementRoles {
		if id == roleID {
			return true
		}
	}
	return false
}

// AddChannel devuelve false si ya estaba (no-op, no persistir).
func (c *GuildConfig) AddChannel(channelID string) bool {
	if c.HasChannel(channelID) {
		return false
	}
	c.ManagementChannels = append(c.ManagementChannels, channelID)
	return true
}

func (c *GuildConfig) RemoveChannel(channelID string) bool {
	for i, id := range c.ManagementChannels {
		if id == channelID {
			c.ManagementChannels = append(c.ManagementChannels[:i], c.ManagementChannels[i+1:]...)
			return true
		}
	}
	return false
}

func (c *GuildConfig) AddRole(roleID string) bool {
	if c.HasRole(roleID) {
		return false
	}
	c.ManagementRoles = append(c.ManagementRoles, roleID)
	return true
}

func (c *GuildConfig) RemoveRole(roleID string) bool {
	for i, id := range c.ManagementRoles {
		if id == roleID {
			c.ManagementRoles = append(c.ManagementRoles[:i], c.ManagementRoles[i+1:]...)
			return true
		}
	}
	return false
}
