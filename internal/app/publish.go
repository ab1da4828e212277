package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Publish uploads an RPM to the YUM repository host. An empty rpmPath
// publishes the last package built.
func (a *App) Publish(ctx context.Context, rpmPath string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	return a.publish(ctx, cfg, rpmPath)
}

func (a *App) publish(ctx context.Context, cfg *domain.Config, rpmPath string) error {
	if cfg.Repo.Host == "" {
		return zerr.With(domain.ErrInvalidConfig, "repo.host", "")
	}

	record, err := a.packageRecord(cfg, rpmPath)
	if err != nil {
		return err
	}
	if rpmPath == "" {
		rpmPath = record.Path
	}

	if st, err := os.Stat(rpmPath); err != nil || st.IsDir() {
		return zerr.With(domain.ErrRPMMissing, "path", rpmPath)
	}

	if record != nil {
		digest, err := a.hasher.ComputeFileHash(rpmPath)
		if err != nil {
			return err
		}
		if digest != record.Digest {
			err := zerr.With(domain.ErrRPMDigestMismatch, "path", rpmPath)
			return zerr.With(err, "recorded", record.Digest)
		}
	}

	a.logger.Info("publishing to " + cfg.Repo.Host)
	return a.step(ctx, "publish "+filepath.Base(rpmPath), func(ctx context.Context, span ports.Span) error {
		sess, err := a.dialer.Dial(ctx, cfg.Repo.Host, cfg.SSH)
		if err != nil {
			return zerr.Wrap(err, domain.ErrPublishFailed.Error())
		}
		defer func() { _ = sess.Close() }()

		if err := sess.Put(ctx, rpmPath, cfg.Repo.Path, true); err != nil {
			return zerr.Wrap(err, domain.ErrPublishFailed.Error())
		}
		return a.sudo(ctx, sess, "chown root:root -R "+domain.ShellQuote(cfg.Repo.Path), span)
	})
}

// packageRecord returns the record of rpmPath, or the latest record when
// rpmPath is empty. Explicit paths without a record are published unchecked.
func (a *App) packageRecord(cfg *domain.Config, rpmPath string) (*domain.PackageRecord, error) {
	key := domain.LatestRecordKey
	if rpmPath != "" {
		key = filepath.Base(rpmPath)
	}

	record, err := a.store.Get(cfg.WorkDir, key)
	if err != nil {
		return nil, err
	}
	if record == nil && rpmPath == "" {
		return nil, domain.ErrNoPackageRecord
	}
	return record, nil
}

// sudo runs a privileged command that must succeed.
func (a *App) sudo(ctx context.Context, sess ports.RemoteSession, command string, out io.Writer) error {
	res, err := sess.Sudo(ctx, command, out)
	if err != nil {
		return err
	}
	if res.Failed() {
		err := zerr.With(domain.ErrRemoteCommandFailed, "host", sess.Host())
		err = zerr.With(err, "command", command)
		return zerr.With(err, "exit_code", res.ExitCode)
	}
	return nil
}
