package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DeployOptions configures a deploy.
type DeployOptions struct {
	// Hosts overrides deploy.hosts from rollout.yaml.
	Hosts []string
	// Mode is dryrun or full.
	Mode string
}

// Deploy installs or updates the service on every host.
func (a *App) Deploy(ctx context.Context, opts DeployOptions) error {
	mode, err := domain.ParseDeployMode(opts.Mode)
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	hosts := uniqueHosts(opts.Hosts)
	if len(hosts) == 0 {
		hosts = uniqueHosts(cfg.Deploy.Hosts)
	}
	if len(hosts) == 0 {
		return domain.ErrNoHosts
	}

	info, err := a.versions.Read(cfg.Package.VersionManifest)
	if err != nil {
		return err
	}
	svc := serviceName(cfg, info)

	a.tracer.EmitPlan(ctx, hosts)

	sessions, err := a.preflight(ctx, cfg, hosts)
	defer func() {
		for _, s := range sessions {
			_ = s.Close()
		}
	}()
	if err != nil {
		return err
	}

	a.logger.Info("running in mode " + string(mode))
	for _, host := range hosts {
		err := a.step(ctx, host, func(ctx context.Context, span ports.Span) error {
			return a.deployHost(ctx, cfg, sessions[host], mode, svc, span)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// preflight connects to every host and runs hostname, with at most
// deploy.concurrency hosts in flight. Hosts that fail are reported together.
func (a *App) preflight(ctx context.Context, cfg *domain.Config, hosts []string) (map[string]ports.RemoteSession, error) {
	a.logger.Info("checking hosts " + strings.Join(hosts, ", "))

	var (
		mu       sync.Mutex
		sessions = make(map[string]ports.RemoteSession, len(hosts))
		bad      []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Deploy.Concurrency, 1))

	for _, host := range hosts {
		g.Go(func() error {
			sess, err := a.checkHost(gctx, cfg, host)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				a.logger.Warn(host + ": " + err.Error())
				bad = append(bad, host)
				return nil
			}
			sessions[host] = sess
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return sessions, err
	}
	if len(bad) > 0 {
		slices.Sort(bad)
		return sessions, zerr.With(domain.ErrInvalidHosts, "hosts", strings.Join(bad, ","))
	}
	return sessions, nil
}

func (a *App) checkHost(ctx context.Context, cfg *domain.Config, host string) (ports.RemoteSession, error) {
	var sess ports.RemoteSession
	err := a.step(ctx, "check "+host, func(ctx context.Context, span ports.Span) error {
		s, err := a.dialer.Dial(ctx, host, cfg.SSH)
		if err != nil {
			return err
		}

		res, err := s.Run(ctx, "hostname", span)
		if err == nil && res.Failed() {
			err = zerr.With(zerr.With(domain.ErrRemoteCommandFailed, "command", "hostname"), "exit_code", res.ExitCode)
		}
		if err != nil {
			_ = s.Close()
			return err
		}

		sess = s
		return nil
	}, ports.WithQuiet())
	return sess, err
}

func (a *App) deployHost(
	ctx context.Context,
	cfg *domain.Config,
	sess ports.RemoteSession,
	mode domain.DeployMode,
	svc string,
	span ports.Span,
) error {
	host := sess.Host()

	installed, err := sess.Sudo(ctx, "yum -q list installed "+domain.ShellQuote(svc), span)
	if err != nil {
		return err
	}
	yumCmd := "yum install -y " + domain.ShellQuote(svc)
	if !installed.Failed() {
		yumCmd = "yum update -y " + domain.ShellQuote(svc)
	}

	if mode == domain.ModeDryRun {
		a.logger.Info(host + ": would run " + yumCmd)
		return nil
	}

	res, err := sess.Sudo(ctx, yumCmd, span)
	if err != nil {
		return err
	}
	if res.Failed() {
		a.logger.Warn(host + ": failed to run " + yumCmd + ", skipping host")
		return nil
	}

	for _, cmd := range []string{
		"service " + domain.ShellQuote(svc) + " restart",
		"chkconfig " + domain.ShellQuote(svc) + " on",
	} {
		if err := a.sudo(ctx, sess, cmd, span); err != nil {
			return err
		}
	}

	if err := a.deployLogos(ctx, cfg, sess); err != nil {
		return err
	}
	return a.deployConsul(ctx, cfg, sess, svc, span)
}

// deployLogos uploads the logos of the host's site, when there are any.
func (a *App) deployLogos(ctx context.Context, cfg *domain.Config, sess ports.RemoteSession) error {
	logos := cfg.Deploy.Logos
	if !logos.Enabled() {
		return nil
	}

	host := sess.Host()
	site := domain.SiteOf(host)
	dir := filepath.Join(logos.Root, site)
	if st, err := os.Stat(dir); site == "" || err != nil || !st.IsDir() {
		a.logger.Info(host + ": no logos found for site " + site)
		return nil
	}

	a.logger.Info(host + ": deploying logos for site " + site)
	for level, err := range a.walker.Walk(dir) {
		if err != nil {
			return err
		}
		for _, name := range level.Files {
			if err := sess.Put(ctx, filepath.Join(level.Dir, name), logos.Remote, true); err != nil {
				return err
			}
		}
		// Only the top level of the site directory is deployed.
		break
	}
	return nil
}

// deployConsul renders the consul service definition for the host, uploads
// it and restarts consul.
func (a *App) deployConsul(ctx context.Context, cfg *domain.Config, sess ports.RemoteSession, svc string, span ports.Span) error {
	consul := cfg.Deploy.Consul
	if !consul.Enabled() {
		return nil
	}

	host := sess.Host()
	text, err := a.templates.Render(
		cfg.ResolveTemplate(consul.Template),
		domain.DefaultConsulTemplate,
		domain.ConsulData{Name: svc, Hostname: host, Site: domain.SiteOf(host)},
	)
	if err != nil {
		return err
	}

	filename := consul.Filename
	if filename == "" {
		filename = svc + ".json"
	}

	workspace := domain.WorkspacePath(cfg.WorkDir)
	if err := os.MkdirAll(workspace, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", workspace)
	}
	rendered := filepath.Join(workspace, filename)
	if err := os.WriteFile(rendered, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", rendered)
	}
	a.logger.Info(host + ": deploying " + rendered)

	if err := sess.Put(ctx, rendered, consul.Destination, true); err != nil {
		return err
	}
	return a.sudo(ctx, sess, "service consul restart", span)
}

// uniqueHosts drops blank and repeated host names, keeping the first occurrence.
func uniqueHosts(hosts []string) []string {
	seen := make(map[string]struct{}, len(hosts))
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}
