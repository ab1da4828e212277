// Package remote runs commands and uploads files on remote hosts over SSH.
package remote

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"os"
	"time"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DialTimeout bounds the TCP connect and SSH handshake.
const DialTimeout = 15 * time.Second

var _ ports.RemoteDialer = (*Dialer)(nil)

// Dialer implements ports.RemoteDialer with golang.org/x/crypto/ssh.
type Dialer struct {
	logger ports.Logger
	// agentSocket overrides SSH_AUTH_SOCK.
	agentSocket string
}

// NewDialer creates a Dialer using the SSH agent from SSH_AUTH_SOCK.
func NewDialer(logger ports.Logger) *Dialer {
	return &Dialer{logger: logger, agentSocket: os.Getenv("SSH_AUTH_SOCK")}
}

// Dial connects to host.
func (d *Dialer) Dial(ctx context.Context, host string, cfg domain.SSHConfig) (ports.RemoteSession, error) {
	ep, err := resolveEndpoint(host, cfg)
	if err != nil {
		return nil, err
	}

	clientCfg, closeAgent, err := d.clientConfig(ep, cfg)
	if err != nil {
		return nil, zerr.With(err, "host", host)
	}

	dialer := net.Dialer{Timeout: DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", ep.Addr())
	if err != nil {
		closeAgent()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteConnectFailed.Error()), "host", host)
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, ep.Addr(), clientCfg)
	if err != nil {
		_ = conn.Close()
		closeAgent()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteConnectFailed.Error()), "host", host)
	}

	return &Session{
		host:       host,
		client:     ssh.NewClient(c, chans, reqs),
		sudo:       cfg.Sudo,
		closeAgent: closeAgent,
	}, nil
}

func (d *Dialer) clientConfig(ep endpoint, cfg domain.SSHConfig) (*ssh.ClientConfig, func(), error) {
	hostKeys, err := hostKeyCallback(cfg)
	if err != nil {
		return nil, nil, err
	}

	var methods []ssh.AuthMethod
	closeAgent := func() {}

	if d.agentSocket != "" {
		if conn, dialErr := net.Dial("unix", d.agentSocket); dialErr == nil {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
			closeAgent = func() { _ = conn.Close() }
		} else {
			d.logger.Warn("ssh agent unavailable: " + dialErr.Error())
		}
	}

	var signers []ssh.Signer
	for _, id := range ep.Identities {
		signer, loadErr := loadIdentity(id)
		if loadErr != nil {
			d.logger.Warn(loadErr.Error())
			continue
		}
		if signer != nil {
			signers = append(signers, signer)
		}
	}
	if len(signers) > 0 {
		methods = append(methods, ssh.PublicKeys(signers...))
	}

	if len(methods) == 0 {
		closeAgent()
		return nil, nil, domain.ErrNoAuthMethods
	}

	return &ssh.ClientConfig{
		User:            ep.User,
		Auth:            methods,
		HostKeyCallback: hostKeys,
		Timeout:         DialTimeout,
	}, closeAgent, nil
}

// loadIdentity returns nil, nil for identity files that do not exist.
func loadIdentity(path string) (ssh.Signer, error) {
	data, err := os.ReadFile(path) //nolint:gosec // identity paths come from configuration
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read identity"), "identity", path)
	}

	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, zerr.With(zerr.New("identity is passphrase protected, load it into ssh-agent"), "identity", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to parse identity"), "identity", path)
	}
	return signer, nil
}

func hostKeyCallback(cfg domain.SSHConfig) (ssh.HostKeyCallback, error) {
	if cfg.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // opt-in through configuration
	}
	if cfg.KnownHosts == "" {
		return nil, domain.ErrKnownHostsMissing
	}

	cb, err := knownhosts.New(cfg.KnownHosts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrKnownHostsMissing.Error()), "known_hosts", cfg.KnownHosts)
	}
	return cb, nil
}
