package remote

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"strconv"

	"github.com/kevinburke/ssh_config"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/zerr"
)

// endpoint is where and as whom to connect for one host.
type endpoint struct {
	Alias      string
	Hostname   string
	Port       int
	User       string
	Identities []string
}

// Addr returns host:port.
func (e endpoint) Addr() string {
	return e.Hostname + ":" + strconv.Itoa(e.Port)
}

// resolveEndpoint merges rollout settings with the OpenSSH client config.
// Explicit rollout settings win; a missing config file is ignored.
func resolveEndpoint(host string, cfg domain.SSHConfig) (endpoint, error) {
	ep := endpoint{Alias: host, Hostname: host, Port: cfg.Port, User: cfg.User}
	ep.Identities = append(ep.Identities, cfg.Identities...)

	if cfg.ConfigFile != "" {
		if err := applyConfigFile(&ep, cfg); err != nil {
			return endpoint{}, err
		}
	}

	if ep.Port == 0 {
		ep.Port = 22
	}
	if ep.User == "" {
		if u, err := user.Current(); err == nil {
			ep.User = u.Username
		}
	}
	return ep, nil
}

func applyConfigFile(ep *endpoint, cfg domain.SSHConfig) error {
	f, err := os.Open(cfg.ConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteConnectFailed.Error()), "ssh_config", cfg.ConfigFile)
	}
	defer func() { _ = f.Close() }()

	parsed, err := ssh_config.Decode(f)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteConnectFailed.Error()), "ssh_config", cfg.ConfigFile)
	}

	if v, _ := parsed.Get(ep.Alias, "HostName"); v != "" {
		ep.Hostname = v
	}
	if ep.User == "" {
		if v, _ := parsed.Get(ep.Alias, "User"); v != "" {
			ep.User = v
		}
	}
	if cfg.Port == 0 || cfg.Port == 22 {
		if v, _ := parsed.Get(ep.Alias, "Port"); v != "" {
			if p, convErr := strconv.Atoi(v); convErr == nil {
				ep.Port = p
			}
		}
	}
	if ids, _ := parsed.GetAll(ep.Alias, "IdentityFile"); len(ids) > 0 {
		for _, id := range ids {
			// ssh_config reports the OpenSSH default when nothing matches.
			if id == "~/.ssh/identity" {
				continue
			}
			ep.Identities = append(ep.Identities, expandHome(id))
		}
	}
	return nil
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return home + p[1:]
}
