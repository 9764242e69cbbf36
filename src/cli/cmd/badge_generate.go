package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/5ht2/heartbeat/src/assets"
	"github.com/5ht2/heartbeat/src/badge"
	"github.com/5ht2/heartbeat/src/config"
	"github.com/5ht2/heartbeat/src/gitver"
	"github.com/5ht2/heartbeat/src/output"
	"github.com/5ht2/heartbeat/src/stats"
	"github.com/5ht2/heartbeat/src/version"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	bgLabel       string
	bgMessage     string
	bgColour      string
	bgLabelColour string
	bgLogo        string
	bgLogoWidth   float32
	bgStatus      string
	bgOutput      string
	bgFontFile    string
	bgStatsFile   string
	bgFailFast    bool
)

var badgeGenerateCmd = &cobra.Command{
	Use:   "generate [name...]",
	Short: "Generate SVG badges from config or flags",
	Long: `Generate SVG badges defined in badges.items.

Config-driven (no --message): generates all configured items, or the named ones.
Ad-hoc (--message, optional --label): generates a single badge from flags.`,
	RunE: runBadgeGenerate,
}

func init() {
	f := badgeGenerateCmd.Flags()
	f.StringVar(&bgLabel, "label", "", "ad-hoc badge label (left side, optional)")
	f.StringVar(&bgMessage, "message", "", "ad-hoc badge message (right side)")
	f.StringVar(&bgColour, "colour", badge.DefaultColour, "ad-hoc message colour (#RGB or #RRGGBB)")
	f.StringVar(&bgLabelColour, "label-colour", "", "ad-hoc label colour (default #555)")
	f.StringVar(&bgLogo, "logo", "", "logo image path, data URI or "+assets.BuiltinLogo)
	f.Float32Var(&bgLogoWidth, "logo-width", 0, "logo width (default 14 when a logo is set)")
	f.StringVar(&bgStatus, "status", "", "status-driven colour: passed, warning, critical")
	f.StringVarP(&bgOutput, "output", "o", "-", "ad-hoc output file, - for stdout")
	f.StringVar(&bgFontFile, "font-file", "", "measure text with this TTF/OTF instead of the built-in table")
	f.StringVar(&bgStatsFile, "stats", "", "stats snapshot JSON (overrides stats_file)")
	f.BoolVar(&bgFailFast, "fail-fast", false, "stop at the first badge that fails")

	badgeCmd.AddCommand(badgeGenerateCmd)
}

func runBadgeGenerate(cmd *cobra.Command, args []string) error {
	eng, err := buildBadgeEngine(cfg.Badges)
	if err != nil {
		return err
	}

	if bgMessage != "" {
		return generateAdHocBadge(cmd.OutOrStdout(), eng)
	}
	return generateConfigBadges(cmd.Context(), cmd.OutOrStdout(), eng, args)
}

func buildBadgeEngine(bc config.BadgesConfig) (*badge.Engine, error) {
	fontFile := bc.FontFile
	if bgFontFile != "" {
		fontFile = bgFontFile
	}
	if fontFile == "" {
		return badge.New(nil), nil
	}

	size := bc.FontSize
	if size == 0 {
		size = 11
	}
	metrics, err := badge.LoadFontFile(fontFile, size)
	if err != nil {
		return nil, fmt.Errorf("loading badge font: %w", err)
	}
	slog.Debug("badge font loaded", "family", metrics.Name(), "size", size)
	return badge.New(metrics), nil
}

// resolveColour maps status keywords to colours and validates hex input.
func resolveColour(c string) (string, error) {
	if c == "" {
		return "", nil
	}
	switch c {
	case "passed", "success", "warning", "critical", "failed":
		return badge.StatusColor(c), nil
	}
	if _, err := badge.ParseColour(c); err != nil {
		return "", err
	}
	return c, nil
}

func generateAdHocBadge(w io.Writer, eng *badge.Engine) error {
	colour := bgColour
	if bgStatus != "" {
		colour = bgStatus
	}
	colour, err := resolveColour(colour)
	if err != nil {
		return fmt.Errorf("--colour: %w", err)
	}
	labelColour, err := resolveColour(bgLabelColour)
	if err != nil {
		return fmt.Errorf("--label-colour: %w", err)
	}
	logo, err := assets.LoadLogo(bgLogo)
	if err != nil {
		return err
	}

	svg := eng.Generate(badge.Spec{
		Label:       bgLabel,
		Message:     bgMessage,
		Colour:      colour,
		LabelColour: labelColour,
		Logo:        logo,
		LogoWidth:   bgLogoWidth,
	})

	if bgOutput == "-" {
		_, err := fmt.Fprintln(w, svg)
		return err
	}
	if err := writeBadge(bgOutput, svg); err != nil {
		return err
	}
	fmt.Fprintf(w, "  badge → %s\n", bgOutput)
	return nil
}

func writeBadge(path, svg string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating badge directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing badge: %w", err)
	}
	return nil
}

// templateVars collects message placeholders from the stats snapshot, the
// enclosing git repo and build info.
func templateVars(now time.Time, items []config.BadgeItemConfig) (map[string]string, error) {
	vars := map[string]string{"version": version.Display()}

	if usesGitVars(items) {
		info, err := gitver.DetectVersion(".")
		if err != nil {
			slog.Warn("git placeholders left unresolved", "err", err)
		} else {
			for k, v := range info.Vars() {
				vars[k] = v
			}
		}
	}

	path := cfg.StatsFile
	if bgStatsFile != "" {
		path = bgStatsFile
	}
	if path == "" {
		return vars, nil
	}
	s, err := stats.Load(path)
	if err != nil {
		return nil, err
	}
	s.Normalize(now)
	for k, v := range s.Messages(now) {
		vars[k] = v
	}
	return vars, nil
}

func usesGitVars(items []config.BadgeItemConfig) bool {
	for _, item := range items {
		if strings.Contains(item.Message, "{git_") {
			return true
		}
	}
	return false
}

func selectItems(items []config.BadgeItemConfig, names []string) ([]config.BadgeItemConfig, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no badge items configured in badges.items")
	}
	if len(names) == 0 {
		return items, nil
	}
	nameSet := make(map[string]bool, len(names))
	for _, n := range names {
		nameSet[n] = true
	}
	var filtered []config.BadgeItemConfig
	for _, item := range items {
		if nameSet[item.Name] {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no matching badge items for: %v", names)
	}
	return filtered, nil
}

func renderItem(eng *badge.Engine, item config.BadgeItemConfig, vars map[string]string, outDir string) output.BadgeResult {
	res := output.BadgeResult{Name: item.Name, Path: item.OutputPath(outDir)}

	colour, err := resolveColour(item.Colour)
	if err != nil {
		res.Err = err
		return res
	}
	logo, err := assets.LoadLogo(item.Logo)
	if err != nil {
		res.Err = err
		return res
	}

	spec := badge.Spec{
		Label:       item.Label,
		Message:     stats.Expand(item.Message, vars),
		Colour:      colour,
		LabelColour: item.LabelColour,
		Logo:        logo,
		LogoWidth:   item.LogoWidth,
	}
	res.Message = spec.Message
	res.Width = eng.Layout(spec).TotalWidth
	res.Err = writeBadge(res.Path, eng.Generate(spec))
	return res
}

func generateConfigBadges(ctx context.Context, w io.Writer, eng *badge.Engine, names []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	items, err := selectItems(cfg.Badges.Items, names)
	if err != nil {
		return err
	}
	vars, err := templateVars(start, items)
	if err != nil {
		return err
	}

	results := make([]output.BadgeResult, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = output.BadgeResult{Name: item.Name, Err: err}
				return nil
			}
			results[i] = renderItem(eng, item, vars, cfg.Badges.OutputDir)
			slog.Debug("badge rendered", "name", item.Name, "message", results[i].Message, "err", results[i].Err)
			if bgFailFast && results[i].Err != nil {
				return fmt.Errorf("badge %s: %w", item.Name, results[i].Err)
			}
			return nil
		})
	}
	groupErr := g.Wait()

	color := output.UseColor()
	sec := output.NewSection(w, "Badges", time.Since(start), color)
	failed := output.BadgeTable(sec, results, color)
	sec.Separator()
	status := "success"
	if failed > 0 {
		status = "failed"
	}
	sec.Total(len(results), time.Since(start), status)
	sec.Close()

	if groupErr != nil {
		return groupErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d badges failed", failed, len(results))
	}
	return nil
}
