package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/suitools/suiwallet/internal/cache"
	"github.com/suitools/suiwallet/internal/config"
	clierr "github.com/suitools/suiwallet/internal/errors"
	"github.com/suitools/suiwallet/internal/httpx"
	"github.com/suitools/suiwallet/internal/id"
	"github.com/suitools/suiwallet/internal/model"
	"github.com/suitools/suiwallet/internal/out"
	"github.com/suitools/suiwallet/internal/policy"
	"github.com/suitools/suiwallet/internal/positions"
	"github.com/suitools/suiwallet/internal/rpc"
	"github.com/suitools/suiwallet/internal/schema"
	"github.com/suitools/suiwallet/internal/version"
	"github.com/suitools/suiwallet/internal/wallet"
)

type Runner struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
}

func NewRunner() *Runner {
	return NewRunnerWithWriters(os.Stdout, os.Stderr)
}

func NewRunnerWithWriters(stdout, stderr io.Writer) *Runner {
	return &Runner{
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
	}
}

type runtimeState struct {
	runner       *Runner
	flags        config.GlobalFlags
	settings     config.Settings
	cache        *cache.Store
	rpcClient    *rpc.Client
	wallet       *wallet.Service
	log          zerolog.Logger
	root         *cobra.Command
	lastCommand  string
	lastWarnings []string
	lastRPC      []model.RPCStatus
	lastPartial  bool
}

func (r *Runner) Run(args []string) int {
	state := &runtimeState{runner: r}
	root := state.newRootCommand()
	state.root = root
	state.resetCommandDiagnostics()
	root.SetArgs(args)
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.Execute()
	err = normalizeRunError(err)
	if err == nil {
		if state.cache != nil {
			_ = state.cache.Close()
		}
		return 0
	}

	state.renderError("", err, state.lastWarnings, state.lastRPC, state.lastPartial)
	if state.cache != nil {
		_ = state.cache.Close()
	}
	return clierr.ExitCode(err)
}

func (s *runtimeState) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   version.CLIName,
		Short: "Read-only Sui wallet explorer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			settings, err := config.Load(s.flags)
			if err != nil {
				return clierr.Wrap(clierr.CodeUsage, "load configuration", err)
			}
			s.settings = settings

			s.log = zerolog.New(io.Discard)
			if settings.Verbose {
				console := zerolog.ConsoleWriter{Out: s.runner.stderr, TimeFormat: time.Kitchen}
				s.log = zerolog.New(console).With().Timestamp().Logger().Level(zerolog.DebugLevel)
			}

			path := trimRootPath(cmd.CommandPath())
			s.lastCommand = path
			if err := policy.CheckCommandAllowed(settings.EnableCommands, path); err != nil {
				return err
			}

			if settings.CacheEnabled && shouldOpenCache(path) && s.cache == nil {
				cacheStore, err := cache.Open(settings.CachePath, settings.CacheLockPath)
				if err != nil {
					return clierr.Wrap(clierr.CodeInternal, "open cache", err)
				}
				s.cache = cacheStore
			}

			if needsRPC(path) && s.rpcClient == nil {
				endpoint := settings.RPCURL
				if endpoint == "" {
					endpoint, err = rpc.EndpointFor(settings.Network)
					if err != nil {
						return err
					}
				}
				httpClient := httpx.New(settings.Timeout, settings.Retries)
				s.rpcClient = rpc.New(httpClient, endpoint, s.log)
				var store wallet.MetadataStore
				if s.cache != nil {
					store = s.cache
				}
				s.wallet = wallet.New(s.rpcClient, store)
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.CodeUsage, "parse flags", err)
	})

	cmd.PersistentFlags().BoolVar(&s.flags.JSON, "json", false, "Output JSON (default)")
	cmd.PersistentFlags().BoolVar(&s.flags.Plain, "plain", false, "Output plain text")
	cmd.PersistentFlags().StringVar(&s.flags.Select, "select", "", "Select fields from data (comma-separated)")
	cmd.PersistentFlags().BoolVar(&s.flags.ResultsOnly, "results-only", false, "Output only data payload")
	cmd.PersistentFlags().StringVar(&s.flags.EnableCommands, "enable-commands", "", "Allowlist command paths (comma-separated)")
	cmd.PersistentFlags().BoolVar(&s.flags.Strict, "strict", false, "Fail on partial results")
	cmd.PersistentFlags().StringVar(&s.flags.Timeout, "timeout", "", "RPC request timeout")
	cmd.PersistentFlags().IntVar(&s.flags.Retries, "retries", -1, "Retries per RPC request")
	cmd.PersistentFlags().StringVar(&s.flags.MaxStale, "max-stale", "", "Maximum stale fallback window after TTL expiry")
	cmd.PersistentFlags().BoolVar(&s.flags.NoStale, "no-stale", false, "Reject stale cache entries")
	cmd.PersistentFlags().BoolVar(&s.flags.NoCache, "no-cache", false, "Disable cache reads and writes")
	cmd.PersistentFlags().StringVar(&s.flags.ConfigPath, "config", "", "Path to config file")
	cmd.PersistentFlags().StringVar(&s.flags.Network, "network", "", "Sui network (mainnet, testnet, devnet)")
	cmd.PersistentFlags().StringVar(&s.flags.RPCURL, "rpc-url", "", "Override fullnode JSON-RPC endpoint")
	cmd.PersistentFlags().BoolVar(&s.flags.Verbose, "verbose", false, "Log RPC diagnostics to stderr")

	cmd.AddCommand(s.newBalancesCommand())
	cmd.AddCommand(s.newChangesCommand())
	cmd.AddCommand(s.newPositionsCommand())
	cmd.AddCommand(s.newReportCommand())
	cmd.AddCommand(s.newNetworksCommand())
	cmd.AddCommand(s.newSchemaCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			if long {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Long())
				return
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.CLIVersion)
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "Print extended build metadata")
	return cmd
}

func (s *runtimeState) newSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [command path]",
		Short: "Print machine-readable command schema",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = strings.Join(args, " ")
			}
			data, err := schema.Build(s.root, path)
			if err != nil {
				return clierr.Wrap(clierr.CodeUsage, "build schema", err)
			}
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), data, nil, cacheMetaBypass(), nil, false)
		},
	}
	return cmd
}

func (s *runtimeState) newNetworksCommand() *cobra.Command {
	root := &cobra.Command{Use: "networks", Short: "Network commands"}
	list := &cobra.Command{
		Use:   "list",
		Short: "List known Sui networks and fullnode endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), rpc.Networks(), nil, cacheMetaBypass(), nil, false)
		},
	}
	root.AddCommand(list)
	return root
}

func (s *runtimeState) newBalancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balances <address>",
		Short: "Coin balances held by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddressArg(args[0])
			if err != nil {
				return err
			}
			key := cacheKey(trimRootPath(cmd.CommandPath()), map[string]any{
				"address": address,
				"network": s.settings.Network,
			})
			return s.runCachedCommand(trimRootPath(cmd.CommandPath()), key, 30*time.Second, func(ctx context.Context) (any, []model.RPCStatus, []string, bool, error) {
				start := time.Now()
				data, err := s.wallet.Balances(ctx, address)
				status := []model.RPCStatus{{Method: "suix_getAllBalances", Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()}}
				return data, status, nil, false, err
			})
		},
	}
	return cmd
}

func (s *runtimeState) newChangesCommand() *cobra.Command {
	var maxTx int
	cmd := &cobra.Command{
		Use:   "changes <address>",
		Short: "Recent balance changes grouped per coin type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddressArg(args[0])
			if err != nil {
				return err
			}
			key := cacheKey(trimRootPath(cmd.CommandPath()), map[string]any{
				"address": address,
				"network": s.settings.Network,
				"max_tx":  maxTx,
			})
			return s.runCachedCommand(trimRootPath(cmd.CommandPath()), key, 60*time.Second, func(ctx context.Context) (any, []model.RPCStatus, []string, bool, error) {
				start := time.Now()
				data, err := s.wallet.RecentActivity(ctx, address, maxTx)
				status := []model.RPCStatus{{Method: "suix_queryTransactionBlocks", Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()}}
				return data, status, nil, false, err
			})
		},
	}
	cmd.Flags().IntVar(&maxTx, "max-tx", 50, "Maximum transactions to inspect")
	return cmd
}

func (s *runtimeState) newPositionsCommand() *cobra.Command {
	var maxPages, pageSize int
	cmd := &cobra.Command{
		Use:   "positions <address>",
		Short: "Detect protocol positions among owned objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddressArg(args[0])
			if err != nil {
				return err
			}
			key := cacheKey(trimRootPath(cmd.CommandPath()), map[string]any{
				"address":   address,
				"network":   s.settings.Network,
				"max_pages": maxPages,
				"page_size": pageSize,
			})
			return s.runCachedCommand(trimRootPath(cmd.CommandPath()), key, 60*time.Second, func(ctx context.Context) (any, []model.RPCStatus, []string, bool, error) {
				start := time.Now()
				data, err := s.scanPositions(ctx, address, maxPages, pageSize)
				status := []model.RPCStatus{{Method: "suix_getOwnedObjects", Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()}}
				return data, status, nil, false, err
			})
		},
	}
	cmd.Flags().IntVar(&maxPages, "max-pages", positions.DefaultMaxPages, "Maximum owned-object pages to scan")
	cmd.Flags().IntVar(&pageSize, "page-size", positions.DefaultPageSize, "Objects requested per page")
	return cmd
}

func (s *runtimeState) newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <address>",
		Short: "Combined wallet report: balances, activity and positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddressArg(args[0])
			if err != nil {
				return err
			}
			s.resetCommandDiagnostics()
			ctx, cancel := context.WithTimeout(context.Background(), s.settings.Timeout)
			defer cancel()

			statuses := []model.RPCStatus{}
			warnings := []string{}
			partial := false

			start := time.Now()
			balances, err := s.wallet.Balances(ctx, address)
			statuses = append(statuses, model.RPCStatus{Method: "suix_getAllBalances", Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()})
			if err != nil {
				s.captureCommandDiagnostics(warnings, statuses, partial)
				return err
			}

			start = time.Now()
			activity, err := s.wallet.RecentActivity(ctx, address, 50)
			statuses = append(statuses, model.RPCStatus{Method: "suix_queryTransactionBlocks", Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()})
			if err != nil {
				partial = true
				warnings = append(warnings, fmt.Sprintf("recent activity unavailable: %v", err))
				activity = nil
			}

			start = time.Now()
			found, err := s.scanPositions(ctx, address, positions.DefaultMaxPages, positions.DefaultPageSize)
			statuses = append(statuses, model.RPCStatus{Method: "suix_getOwnedObjects", Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()})
			if err != nil {
				partial = true
				warnings = append(warnings, fmt.Sprintf("position scan unavailable: %v", err))
				found = nil
			}
			sort.Slice(found, func(i, j int) bool {
				if found[i].Protocol != found[j].Protocol {
					return found[i].Protocol < found[j].Protocol
				}
				return found[i].Label < found[j].Label
			})

			if partial && s.settings.Strict {
				s.captureCommandDiagnostics(warnings, statuses, true)
				return clierr.New(clierr.CodePartialStrict, "partial results returned in strict mode")
			}

			report := model.WalletReport{
				Address:   id.NormalizeAddress(address),
				Network:   s.settings.Network,
				Balances:  balances,
				Activity:  activity,
				Positions: found,
			}
			s.captureCommandDiagnostics(warnings, statuses, partial)
			if s.settings.OutputMode == "plain" {
				return out.RenderReport(s.runner.stdout, report)
			}
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), report, warnings, cacheMetaBypass(), statuses, partial)
		},
	}
	return cmd
}

func (s *runtimeState) scanPositions(ctx context.Context, address string, maxPages, pageSize int) ([]model.ProtocolPosition, error) {
	if pageSize <= 0 {
		pageSize = positions.DefaultPageSize
	}
	normalized := id.NormalizeAddress(address)
	fetch := func(ctx context.Context, cursor any) (positions.Page, error) {
		page, err := s.rpcClient.GetOwnedObjects(ctx, normalized, cursor, pageSize)
		if err != nil {
			return positions.Page{}, err
		}
		return positions.Page{Objects: page.Objects, Cursor: page.NextCursor, HasMore: page.HasMore}, nil
	}
	return positions.Scan(ctx, fetch, maxPages)
}

func parseAddressArg(raw string) (string, error) {
	normalized := id.NormalizeAddress(raw)
	if normalized == "" {
		return "", clierr.New(clierr.CodeUsage, "address is required")
	}
	return normalized, nil
}

type fetchFn func(ctx context.Context) (data any, rpcStatus []model.RPCStatus, warnings []string, partial bool, err error)

func (s *runtimeState) runCachedCommand(commandPath, key string, ttl time.Duration, fetch fetchFn) error {
	s.resetCommandDiagnostics()
	cacheStatus := cacheMetaMiss()
	warnings := []string{}
	var staleData any
	staleAvailable := false
	staleObservedAge := time.Duration(0)
	staleObservedAt := time.Time{}
	staleCacheStatus := cacheMetaMiss()

	if s.settings.CacheEnabled && s.cache != nil {
		cached, err := s.cache.Get(key, s.settings.MaxStale)
		if err == nil && cached.Hit {
			entryStatus := model.CacheStatus{Status: "hit", AgeMS: cached.Age.Milliseconds(), Stale: cached.Stale}
			if !cached.Stale {
				var data any
				if err := json.Unmarshal(cached.Value, &data); err == nil {
					s.captureCommandDiagnostics(warnings, nil, false)
					return s.emitSuccess(commandPath, data, warnings, entryStatus, nil, false)
				}
			} else {
				var data any
				if err := json.Unmarshal(cached.Value, &data); err == nil {
					staleData = data
					staleAvailable = true
					staleObservedAge = cached.Age
					staleObservedAt = time.Now()
					staleCacheStatus = entryStatus
				}
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.settings.Timeout)
	defer cancel()
	data, rpcStatus, fetchWarnings, partial, err := fetch(ctx)
	warnings = append(warnings, fetchWarnings...)
	s.captureCommandDiagnostics(warnings, rpcStatus, partial)
	if err != nil {
		if staleAvailable {
			if !staleFallbackAllowed(err) {
				return err
			}
			currentStaleAge := staleObservedAge
			if !staleObservedAt.IsZero() {
				currentStaleAge += time.Since(staleObservedAt)
			}
			staleCacheStatus.AgeMS = currentStaleAge.Milliseconds()
			if s.settings.NoStale {
				return clierr.Wrap(clierr.CodeStale, "fresh RPC fetch failed and stale fallback is disabled (--no-stale)", err)
			}
			if staleExceedsBudget(currentStaleAge, ttl, s.settings.MaxStale) {
				return clierr.Wrap(clierr.CodeStale, "fresh RPC fetch failed and cached data exceeded stale budget", err)
			}
			warnings = append(warnings, "RPC fetch failed; serving stale data within max-stale budget")
			s.captureCommandDiagnostics(warnings, rpcStatus, false)
			return s.emitSuccess(commandPath, staleData, warnings, staleCacheStatus, rpcStatus, false)
		}
		return err
	}

	if partial && s.settings.Strict {
		s.captureCommandDiagnostics(warnings, rpcStatus, true)
		return clierr.New(clierr.CodePartialStrict, "partial results returned in strict mode")
	}

	if s.settings.CacheEnabled && s.cache != nil {
		if payload, err := json.Marshal(data); err == nil {
			_ = s.cache.Set(key, payload, ttl)
			cacheStatus = model.CacheStatus{Status: "write", AgeMS: 0, Stale: false}
		}
	}

	s.captureCommandDiagnostics(warnings, rpcStatus, partial)
	return s.emitSuccess(commandPath, data, warnings, cacheStatus, rpcStatus, partial)
}

func (s *runtimeState) emitSuccess(commandPath string, data any, warnings []string, cacheStatus model.CacheStatus, rpcStatus []model.RPCStatus, partial bool) error {
	env := model.Envelope{
		Version:  model.EnvelopeVersion,
		Success:  true,
		Data:     data,
		Error:    nil,
		Warnings: warnings,
		Meta: model.EnvelopeMeta{
			RequestID: newRequestID(),
			Timestamp: s.runner.now().UTC(),
			Command:   commandPath,
			Network:   s.settings.Network,
			RPC:       rpcStatus,
			Cache:     cacheStatus,
			Partial:   partial,
		},
	}
	return out.Render(s.runner.stdout, env, s.settings)
}

func (s *runtimeState) renderError(commandPath string, err error, warnings []string, rpcStatus []model.RPCStatus, partial bool) {
	if strings.TrimSpace(commandPath) == "" {
		commandPath = s.lastCommand
		if commandPath == "" {
			commandPath = version.CLIName
		}
	}
	code := clierr.ExitCode(err)
	typ := "internal_error"
	message := err.Error()
	if cErr, ok := clierr.As(err); ok {
		message = cErr.Message
		if cErr.Cause != nil {
			message = fmt.Sprintf("%s: %v", cErr.Message, cErr.Cause)
		}
		switch cErr.Code {
		case clierr.CodeUsage:
			typ = "usage_error"
		case clierr.CodeRPC:
			typ = "rpc_error"
		case clierr.CodeRateLimited:
			typ = "rate_limited"
		case clierr.CodeUnavailable:
			typ = "endpoint_unavailable"
		case clierr.CodeUnsupported:
			typ = "unsupported"
		case clierr.CodeStale:
			typ = "stale_data"
		case clierr.CodePartialStrict:
			typ = "partial_results"
		case clierr.CodeBlocked:
			typ = "command_blocked"
		}
	}

	settings := s.settings
	if settings.OutputMode == "" {
		settings.OutputMode = "json"
	}
	settings.ResultsOnly = false
	settings.SelectFields = nil
	env := model.Envelope{
		Version: model.EnvelopeVersion,
		Success: false,
		Data:    []any{},
		Error: &model.ErrorBody{
			Code:    code,
			Type:    typ,
			Message: message,
		},
		Warnings: warnings,
		Meta: model.EnvelopeMeta{
			RequestID: newRequestID(),
			Timestamp: s.runner.now().UTC(),
			Command:   commandPath,
			Network:   s.settings.Network,
			RPC:       rpcStatus,
			Cache:     cacheMetaBypass(),
			Partial:   partial,
		},
	}
	_ = out.Render(s.runner.stderr, env, settings)
}

func cacheKey(commandPath string, req any) string {
	buf, _ := json.Marshal(req)
	sum := sha256.Sum256(append([]byte(commandPath+"|"), buf...))
	return hex.EncodeToString(sum[:])
}

func newRequestID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func trimRootPath(path string) string {
	parts := strings.Fields(path)
	if len(parts) <= 1 {
		return path
	}
	return strings.Join(parts[1:], " ")
}

func statusFromErr(err error) string {
	if err == nil {
		return "ok"
	}
	if cErr, ok := clierr.As(err); ok {
		switch cErr.Code {
		case clierr.CodeRPC:
			return "rpc_error"
		case clierr.CodeRateLimited:
			return "rate_limited"
		case clierr.CodeUnavailable:
			return "unavailable"
		default:
			return "error"
		}
	}
	return "error"
}

func cacheMetaBypass() model.CacheStatus {
	return model.CacheStatus{Status: "bypass", AgeMS: 0, Stale: false}
}

func cacheMetaMiss() model.CacheStatus {
	return model.CacheStatus{Status: "miss", AgeMS: 0, Stale: false}
}

func normalizeRunError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := clierr.As(err); ok {
		return err
	}
	if isLikelyUsageError(err) {
		return clierr.Wrap(clierr.CodeUsage, "invalid command input", err)
	}
	return clierr.Wrap(clierr.CodeInternal, "execute command", err)
}

func isLikelyUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	patterns := []string{
		"unknown command",
		"unknown flag",
		"required flag(s)",
		"flag needs an argument",
		"requires at least",
		"requires exactly",
		"accepts ",
		"invalid argument",
		"invalid args",
	}
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

func staleExceedsBudget(age, ttl, maxStale time.Duration) bool {
	if age <= ttl {
		return false
	}
	if maxStale < 0 {
		return false
	}
	return age > ttl+maxStale
}

func staleFallbackAllowed(err error) bool {
	cErr, ok := clierr.As(err)
	if !ok {
		return false
	}
	return cErr.Code == clierr.CodeUnavailable || cErr.Code == clierr.CodeRateLimited
}

func shouldOpenCache(commandPath string) bool {
	switch normalizeCommandPath(commandPath) {
	case "", "version", "schema", "networks", "networks list":
		return false
	default:
		return true
	}
}

func needsRPC(commandPath string) bool {
	switch normalizeCommandPath(commandPath) {
	case "balances", "changes", "positions", "report":
		return true
	default:
		return false
	}
}

func normalizeCommandPath(commandPath string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(commandPath))), " ")
}

func (s *runtimeState) resetCommandDiagnostics() {
	s.lastWarnings = nil
	s.lastRPC = nil
	s.lastPartial = false
}

func (s *runtimeState) captureCommandDiagnostics(warnings []string, rpcStatus []model.RPCStatus, partial bool) {
	if len(warnings) == 0 {
		s.lastWarnings = nil
	} else {
		s.lastWarnings = append([]string(nil), warnings...)
	}
	if len(rpcStatus) == 0 {
		s.lastRPC = nil
	} else {
		s.lastRPC = append([]model.RPCStatus(nil), rpcStatus...)
	}
	s.lastPartial = partial
}
